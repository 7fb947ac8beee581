package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/namegen/pkg/corpus"
	"github.com/dmitrymomot/namegen/pkg/logger"
	"github.com/dmitrymomot/namegen/pkg/model"
	"github.com/dmitrymomot/namegen/pkg/vocab"
)

// trainingSource picks the names the model was trained on: the
// WithTrainingNames option, then VOCAB_FILE, then CORPUS_FILE. A nil source
// means none is configured.
func trainingSource(cfg Config, o options) (corpus.Source, string) {
	switch {
	case o.training != nil:
		return o.training, "option"
	case cfg.Vocabulary.File != "":
		return corpus.FileSource(cfg.Vocabulary.File), "vocab_file"
	case cfg.Corpus.File != "":
		return corpus.FileSource(cfg.Corpus.File), "corpus_file"
	}
	return nil, "corpus"
}

// buildVocabulary reads the training names and builds the vocabulary from
// their cleaned spellings. Without training names the merged corpus is used.
func (a *App) buildVocabulary(ctx context.Context, cfg Config, o options) (*vocab.Vocabulary, error) {
	src, from := trainingSource(cfg, o)

	var names []string
	if src == nil {
		a.Log.WarnContext(ctx, "no training names configured, using the merged corpus for the vocabulary")
		names = a.Corpus.Names()
	} else {
		raw, err := src.Names(ctx)
		if err != nil {
			return nil, fmt.Errorf("training names: %w", err)
		}
		names = make([]string, 0, len(raw))
		for _, name := range raw {
			if n := corpus.Clean(name); n != "" {
				names = append(names, n)
			}
		}
	}

	v, err := vocab.New(names)
	if err != nil {
		return nil, err
	}
	a.Log.InfoContext(ctx, "vocabulary built", logger.Source(from), slog.Int("size", v.Size()))
	return v, nil
}

// verifyVocabulary runs one prediction from START and compares its width
// with the vocabulary size. An unreachable model is only reported; the
// readiness probe covers it.
func (a *App) verifyVocabulary(ctx context.Context) error {
	state := model.ZeroState(1, a.Model.StateWidth())
	pred, err := a.Model.Predict(ctx, [][]int{{a.Vocabulary.Start()}}, state)
	if err != nil {
		a.Log.WarnContext(ctx, "vocabulary not verified", logger.Error(err))
		return nil
	}
	if len(pred.Probs) != 1 {
		return fmt.Errorf("%w: model returned %d distributions for one input", ErrVocabularyMismatch, len(pred.Probs))
	}
	if got, want := len(pred.Probs[0]), a.Vocabulary.Size(); got != want {
		return fmt.Errorf("%w: model predicts %d characters, vocabulary has %d", ErrVocabularyMismatch, got, want)
	}
	return nil
}
