// Package names exposes the novelty-filtered name generator to users.
//
// Service applies the input rules shared by the web front end and the CLI:
// the seed is trimmed and lower-cased, an empty count means one name, and
// a count outside [1, MaxCount], an unknown seed character or a seed that
// leaves no room for generated characters is reported as
// validator.ValidationErrors. Nothing is silently clamped.
//
// Web mounts the HTTP routes on a chi router:
//
//	svc := names.NewService(filter, vocabulary, names.WithMaxCount(cfg.MaxCount))
//	r.Mount("/", names.NewWeb(svc, names.DefaultViews(), log).Handle())
//
// Generation failures map to HTTP statuses in one place: exhausted retries
// become 503, model failures 502 and validation failures 422. The page shows
// capitalized names while the JSON API returns them as generated. Downloads
// are built from the names posted back by the page, so nothing is stored on
// the server between requests.
package names
