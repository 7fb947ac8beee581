package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrymomot/namegen/pkg/model"
)

// maxErrorBody bounds how much of an error response is kept in error messages.
const maxErrorBody = 1 << 10

// Adapter calls a remote model server. It is safe for concurrent use.
type Adapter struct {
	cfg        Config
	client     *http.Client
	predictURL string
	statusURL  string
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithHTTPClient sets the HTTP client used for every request.
func WithHTTPClient(c *http.Client) Option {
	return func(a *Adapter) {
		if c == nil {
			panic("remote: http client cannot be nil")
		}
		a.client = c
	}
}

// New creates an adapter for the model described by cfg.
func New(cfg Config, opts ...Option) (*Adapter, error) {
	cfg = cfg.withDefaults()

	base, err := url.Parse(strings.TrimSuffix(cfg.URL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%w: model url %q", ErrInvalidConfig, cfg.URL)
	}
	if cfg.StateWidth < 1 {
		return nil, fmt.Errorf("%w: state width %d", ErrInvalidConfig, cfg.StateWidth)
	}

	status := base.JoinPath("v1", "models", cfg.Name)
	a := &Adapter{
		cfg:        cfg,
		client:     &http.Client{Timeout: cfg.Timeout},
		statusURL:  status.String(),
		predictURL: status.String() + ":predict",
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// StateWidth implements model.Adapter.
func (a *Adapter) StateWidth() int {
	return a.cfg.StateWidth
}

type predictRequest struct {
	Inputs map[string]any `json:"inputs"`
}

type predictResponse struct {
	Outputs map[string]json.RawMessage `json:"outputs"`
}

// Predict implements model.Adapter.
func (a *Adapter) Predict(ctx context.Context, inputs [][]int, state model.State) (model.Prediction, error) {
	if err := model.ValidateInputs(inputs); err != nil {
		return model.Prediction{}, err
	}
	if err := state.Validate(len(inputs), a.cfg.StateWidth); err != nil {
		return model.Prediction{}, err
	}

	body, err := json.Marshal(predictRequest{Inputs: map[string]any{
		a.cfg.Input:    inputs,
		a.cfg.HiddenIn: state.Hidden,
		a.cfg.CellIn:   state.Cell,
	}})
	if err != nil {
		return model.Prediction{}, errors.Join(ErrRequestFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.predictURL, bytes.NewReader(body))
	if err != nil {
		return model.Prediction{}, errors.Join(ErrRequestFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	var resp predictResponse
	if err := a.do(req, &resp); err != nil {
		return model.Prediction{}, err
	}
	return a.decodePrediction(resp)
}

func (a *Adapter) decodePrediction(resp predictResponse) (model.Prediction, error) {
	var probs [][][]float32
	if err := a.output(resp, a.cfg.Probs, &probs); err != nil {
		return model.Prediction{}, err
	}

	pred := model.Prediction{Probs: make([][]float32, len(probs))}
	for i, steps := range probs {
		if len(steps) == 0 {
			return model.Prediction{}, fmt.Errorf("%w: sequence %d has no time steps", ErrInvalidResponse, i)
		}
		pred.Probs[i] = steps[len(steps)-1]
	}

	if err := a.output(resp, a.cfg.HiddenOut, &pred.State.Hidden); err != nil {
		return model.Prediction{}, err
	}
	if err := a.output(resp, a.cfg.CellOut, &pred.State.Cell); err != nil {
		return model.Prediction{}, err
	}
	return pred, nil
}

func (a *Adapter) output(resp predictResponse, name string, dst any) error {
	raw, ok := resp.Outputs[name]
	if !ok {
		return fmt.Errorf("%w: missing output %q", ErrInvalidResponse, name)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: output %q: %v", ErrInvalidResponse, name, err)
	}
	return nil
}

type statusResponse struct {
	Versions []struct {
		Version string `json:"version"`
		State   string `json:"state"`
	} `json:"model_version_status"`
}

// Ping reports whether the server has at least one available version of the
// model. It is meant to back readiness probes.
func (a *Adapter) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.statusURL, nil)
	if err != nil {
		return errors.Join(ErrRequestFailed, err)
	}

	var status statusResponse
	if err := a.do(req, &status); err != nil {
		return err
	}
	for _, v := range status.Versions {
		if v.State == "AVAILABLE" {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrModelNotAvailable, a.cfg.Name)
}

func (a *Adapter) do(req *http.Request, dst any) error {
	res, err := a.client.Do(req)
	if err != nil {
		return errors.Join(ErrRequestFailed, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		return fmt.Errorf("%w: %s: %s", ErrUnexpectedStatus, res.Status, strings.TrimSpace(string(msg)))
	}
	if err := json.NewDecoder(res.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return nil
}
