package usecase

import (
	"context"

	"go-form-relay/config"
	"go-form-relay/internal/domain"
	"go-form-relay/pkg/email"
	"go-form-relay/pkg/logger"
	"go-form-relay/pkg/metrics"
	"go-form-relay/pkg/validation"
)

const submissionSubject = "Form Submission Data"

type submissionUsecase struct {
	store    domain.SheetStore
	notifier domain.Notifier
	cfg      *config.Config
}

func NewSubmissionUsecase(store domain.SheetStore, notifier domain.Notifier, cfg *config.Config) domain.SubmissionUsecase {
	return &submissionUsecase{
		store:    store,
		notifier: notifier,
		cfg:      cfg,
	}
}

// submissionRun carries the values produced by each stage of one submission
type submissionRun struct {
	form       *domain.FormSubmission
	cells      []domain.CellValue
	recipients []string
	notified   []string
	state      domain.SubmissionState
}

type submissionStage struct {
	reached domain.SubmissionState
	run     func(ctx context.Context, r *submissionRun) error
}

// Submit runs append -> read recipients -> filter -> deliver, stopping at the first failure.
func (uc *submissionUsecase) Submit(ctx context.Context, form *domain.FormSubmission) (*domain.SubmissionReceipt, error) {
	log := logger.FromContext(ctx)
	run := &submissionRun{form: form, state: domain.StateReceived}

	stages := []submissionStage{
		{reached: domain.StateAppended, run: uc.appendRow},
		{reached: domain.StateRecipientsFetched, run: uc.fetchRecipients},
		{reached: domain.StateFiltered, run: uc.filterRecipients},
		{reached: domain.StateCompleted, run: uc.deliver},
	}

	for _, stage := range stages {
		if err := stage.run(ctx, run); err != nil {
			failedAt := run.state
			run.state = domain.StateFailed
			log.Error("Submission failed",
				"state", run.state.String(),
				"failed_at", failedAt.String(),
				"reason", string(domain.ReasonOf(err)),
				"notified", len(run.notified),
				"error", err,
			)
			metrics.ObserveFlow("submission", string(domain.ReasonOf(err)))
			return nil, err
		}
		run.state = stage.reached
		log.Debug("Submission stage reached", "state", run.state.String())
	}

	metrics.ObserveFlow("submission", "ok")
	log.Info("Form data saved and emails sent", "recipients", len(run.notified))
	return &domain.SubmissionReceipt{State: run.state, Recipients: run.notified}, nil
}

func (uc *submissionUsecase) appendRow(ctx context.Context, r *submissionRun) error {
	callCtx, cancel := withCallTimeout(ctx, uc.cfg.ExternalCallTimeout)
	defer cancel()

	if err := uc.store.Append(callCtx, uc.cfg.SheetID, uc.cfg.SubmissionAppendRange, r.form.Row()); err != nil {
		return &domain.FlowError{Reason: domain.StoreWriteFailed, Err: err}
	}
	return nil
}

func (uc *submissionUsecase) fetchRecipients(ctx context.Context, r *submissionRun) error {
	callCtx, cancel := withCallTimeout(ctx, uc.cfg.ExternalCallTimeout)
	defer cancel()

	refs := make([]domain.CellRef, len(uc.cfg.RecipientCells))
	for i, c := range uc.cfg.RecipientCells {
		refs[i] = domain.CellRef(c)
	}

	cells, err := uc.store.BatchRead(callCtx, uc.cfg.SheetID, refs)
	if err != nil {
		return &domain.FlowError{Reason: domain.StoreReadFailed, Err: err}
	}
	r.cells = cells
	return nil
}

func (uc *submissionUsecase) filterRecipients(ctx context.Context, r *submissionRun) error {
	r.recipients = FilterRecipients(r.cells)
	logger.FromContext(ctx).Debug("Resolved notification recipients",
		"cells", len(r.cells),
		"valid", len(r.recipients),
	)
	if len(r.recipients) == 0 {
		return &domain.FlowError{Reason: domain.NoValidRecipients, Err: domain.ErrNoValidRecipients}
	}
	return nil
}

// deliver sends the same summary to every recipient in order. One failure aborts the rest.
func (uc *submissionUsecase) deliver(ctx context.Context, r *submissionRun) error {
	r.state = domain.StateDelivering

	fields := submissionFields(r.form)
	msg := domain.EmailMessage{
		Subject:  submissionSubject,
		TextBody: email.FormatFields(fields),
	}
	if html, err := email.RenderFieldsHTML(submissionSubject, fields); err == nil {
		msg.HTMLBody = html
	} else {
		logger.FromContext(ctx).Warn("Falling back to plain text notification", "error", err)
	}

	for _, to := range r.recipients {
		m := msg
		m.To = to
		if err := uc.send(ctx, &m); err != nil {
			return &domain.FlowError{Reason: domain.DeliveryFailed, Err: err}
		}
		r.notified = append(r.notified, to)
	}
	return nil
}

func (uc *submissionUsecase) send(ctx context.Context, msg *domain.EmailMessage) error {
	callCtx, cancel := withCallTimeout(ctx, uc.cfg.ExternalCallTimeout)
	defer cancel()
	return uc.notifier.Send(callCtx, msg)
}

// FilterRecipients keeps present, non-blank, well-formed addresses in cell order.
func FilterRecipients(cells []domain.CellValue) []string {
	var out []string
	for _, c := range cells {
		if !c.Present || c.Value == "" {
			continue
		}
		if !validation.IsValidEmail(c.Value) {
			continue
		}
		out = append(out, c.Value)
	}
	return out
}

func submissionFields(f *domain.FormSubmission) []email.Field {
	return []email.Field{
		{Label: "First Name", Value: string(f.FirstName)},
		{Label: "Middle Name", Value: string(f.MiddleName)},
		{Label: "Last Name", Value: string(f.LastName)},
		{Label: "Email", Value: string(f.Email)},
		{Label: "Department", Value: string(f.Department)},
		{Label: "Input Radio", Value: string(f.InputRadio)},
		{Label: "Input Radio 1", Value: string(f.InputRadio1)},
		{Label: "Input Radio 2", Value: string(f.InputRadio2)},
		{Label: "Input Text", Value: string(f.InputText)},
		{Label: "Description", Value: string(f.Description)},
	}
}
