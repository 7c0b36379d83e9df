package usecase

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"text/template"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/farrier/pkg/domain/interfaces"
	"github.com/m-mizutani/farrier/pkg/domain/model"
	"github.com/m-mizutani/farrier/pkg/domain/types"
	"github.com/m-mizutani/farrier/pkg/utils/async"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
)

//go:embed prompts/compat_system.md
var compatSystemPrompt string

//go:embed prompts/compat_user.md
var compatUserTemplate string

type compatUseCase struct {
	llmClient gollem.LLMClient
	userTmpl  *template.Template
	markers   []model.MarkerSet
	sink      interfaces.TraceSink
	notifier  interfaces.Notifier
	timeout   time.Duration
}

// CompatOption configures NewCompat.
type CompatOption func(*compatUseCase)

// WithMarkerSets adds ecosystem marker sets on top of the built-in ones.
func WithMarkerSets(sets ...model.MarkerSet) CompatOption {
	return func(uc *compatUseCase) {
		uc.markers = append(uc.markers, sets...)
	}
}

// WithTraceSink records the inputs of every check to sink before the LLM
// call, so a hung or failed analysis still leaves its evidence behind.
func WithTraceSink(sink interfaces.TraceSink) CompatOption {
	return func(uc *compatUseCase) {
		uc.sink = sink
	}
}

// WithNotifier announces every completed check to n.
func WithNotifier(n interfaces.Notifier) CompatOption {
	return func(uc *compatUseCase) {
		uc.notifier = n
	}
}

// WithTimeout overrides the per-check LLM deadline.
func WithTimeout(d time.Duration) CompatOption {
	return func(uc *compatUseCase) {
		uc.timeout = d
	}
}

// NewCompat creates the compatibility check use case on top of llmClient.
func NewCompat(llmClient gollem.LLMClient, opts ...CompatOption) (interfaces.CompatUseCase, error) {
	tmpl, err := template.New("compat_user").Parse(compatUserTemplate)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse compatibility prompt template")
	}

	uc := &compatUseCase{
		llmClient: llmClient,
		userTmpl:  tmpl,
		markers:   model.BuiltinMarkerSets(),
		timeout:   types.AnalysisTimeout,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc, nil
}

// CheckCompatibility scans the project for code touched by the library,
// assembles the evidence into a prompt, and asks the LLM for an upgrade
// assessment. The report carries the raw analysis text.
func (uc *compatUseCase) CheckCompatibility(ctx context.Context, req *model.CompatibilityRequest) (*model.CompatibilityReport, error) {
	logger := ctxlog.From(ctx)

	checkID := req.CheckID
	if checkID == "" {
		checkID = uuid.NewString()
	}

	logger.Info("Starting compatibility check",
		"check_id", checkID,
		"library", req.Library,
		"from_version", req.FromVersion,
		"to_version", req.ToVersion,
		"dir", req.Dir,
	)

	sc := newScanner(req.Library, uc.markers)
	candidates := sc.scan(ctx, req.Dir)
	if len(candidates) == 0 {
		logger.Warn("No files matched any relevance predicate, falling back to the manifest", "library", req.Library)
		candidates = fallbackManifest(ctx, req.Dir)
	}
	logger.Info("Collected candidate files", "check_id", checkID, "count", len(candidates))

	prompt, err := uc.buildPrompt(req, assembleSnippets(candidates))
	if err != nil {
		return nil, err
	}

	uc.writeTrace(ctx, checkID, req, candidates, prompt)

	llmCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	session, err := uc.llmClient.NewSession(llmCtx, gollem.WithSessionSystemPrompt(compatSystemPrompt))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create LLM session", goerr.V("check_id", checkID))
	}

	resp, err := session.Generate(llmCtx, []gollem.Input{gollem.Text(prompt)})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate compatibility analysis",
			goerr.V("check_id", checkID),
			goerr.V("library", req.Library),
		)
	}
	if len(resp.Texts) == 0 {
		return nil, goerr.Wrap(types.ErrAnalysisFailed, "empty response from LLM", goerr.V("check_id", checkID))
	}

	report := &model.CompatibilityReport{
		CheckID:     checkID,
		Library:     req.Library,
		FromVersion: req.FromVersion,
		ToVersion:   req.ToVersion,
		Analysis:    resp.Texts[0],
		Candidates:  candidates,
	}

	logger.Info("Compatibility check finished", "check_id", checkID, "analysis_chars", len(report.Analysis))

	uc.announce(ctx, report)

	return report, nil
}

func (uc *compatUseCase) buildPrompt(req *model.CompatibilityRequest, snippets string) (string, error) {
	var buf bytes.Buffer
	err := uc.userTmpl.Execute(&buf, map[string]string{
		"Library":     req.Library,
		"FromVersion": req.FromVersion,
		"ToVersion":   req.ToVersion,
		"Snippets":    snippets,
	})
	if err != nil {
		return "", goerr.Wrap(err, "failed to render compatibility prompt", goerr.V("library", req.Library))
	}
	return buf.String(), nil
}

// writeTrace records the check inputs. Trace failures are logged and
// swallowed: diagnostics must never break a check.
func (uc *compatUseCase) writeTrace(ctx context.Context, checkID string, req *model.CompatibilityRequest, candidates []model.CandidateFile, prompt string) {
	if uc.sink == nil {
		return
	}

	rec := &model.CompatTrace{
		CheckID:     checkID,
		Library:     req.Library,
		FromVersion: req.FromVersion,
		ToVersion:   req.ToVersion,
		Candidates:  candidates,
		Prompt:      prompt,
		Payload:     fmt.Sprintf("system_prompt_chars=%d user_prompt_chars=%d timeout=%s", len(compatSystemPrompt), len(prompt), uc.timeout),
	}
	if err := uc.sink.CompatCheck(ctx, rec); err != nil {
		ctxlog.From(ctx).Warn("Failed to write compatibility trace", "check_id", checkID, "error", err)
	}
}

// announce fires the notification without blocking the caller. The tool
// response must not wait on a webhook, and delivery failures only get logged.
func (uc *compatUseCase) announce(ctx context.Context, report *model.CompatibilityReport) {
	if uc.notifier == nil {
		return
	}
	async.Dispatch(ctx, func(ctx context.Context) error {
		return uc.notifier.CompatChecked(ctx, report)
	})
}
