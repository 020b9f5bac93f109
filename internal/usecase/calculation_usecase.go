package usecase

import (
	"context"
	"errors"
	"fmt"
	"insumos_limpeza/internal/domain/calculator"
	"insumos_limpeza/internal/domain/entities"
	"insumos_limpeza/internal/usecase/interfaces"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
)

var (
	ErrCalculationNotFound     = errors.New("calculation not found")
	ErrInvalidCalculationID    = errors.New("invalid calculation id")
	ErrInvalidContact          = errors.New("invalid contact")
	ErrReportAlreadyDelivered  = errors.New("report already delivered")
	ErrReportDeliveryFailed    = errors.New("report delivery failed")
	ErrReportRendererNotConfig = errors.New("report renderer not configured")
	ErrReportSenderNotConfig   = errors.New("report sender not configured")
)

const (
	ContentTypePDF  = "application/pdf"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ICalculationUseCase exposes the supplies calculation operations.
//
//   - Calculate => validate, estimate and persist with the lead's contact
//   - Preview   => validate and estimate only
//   - RenderPDF / RenderXLSX => documents for a stored calculation
//   - DeliverReport => e-mail the documents at most once per calculation

type ICalculationUseCase interface {
	Calculate(ctx context.Context, in entities.CalculatorInput, contato entities.Contact) (entities.CalculationRecord, error)
	Preview(ctx context.Context, in entities.CalculatorInput) (entities.CalculationResult, error)
	GetByID(ctx context.Context, id string) (entities.CalculationRecord, error)
	RenderPDF(ctx context.Context, id string) ([]byte, error)
	RenderXLSX(ctx context.Context, id string) ([]byte, error)
	DeliverReport(ctx context.Context, id string) (entities.CalculationRecord, error)
}

// DeliveryPolicy bounds the e-mail retries of DeliverReport.
type DeliveryPolicy struct {
	MaxRetries uint64
	Base       time.Duration
	Max        time.Duration
}

// DefaultDeliveryPolicy is used when REPORT_* variables are unset.
var DefaultDeliveryPolicy = DeliveryPolicy{MaxRetries: 3, Base: 500 * time.Millisecond, Max: 5 * time.Second}

// DeliveryPolicyFromEnv reads REPORT_MAX_RETRIES, REPORT_RETRY_BASE and
// REPORT_RETRY_MAX, keeping the default for missing or malformed values.
func DeliveryPolicyFromEnv() DeliveryPolicy {
	p := DefaultDeliveryPolicy
	if v, err := strconv.ParseUint(strings.TrimSpace(getenvDefault("REPORT_MAX_RETRIES", "")), 10, 64); err == nil {
		p.MaxRetries = v
	}
	if v, err := time.ParseDuration(strings.TrimSpace(getenvDefault("REPORT_RETRY_BASE", ""))); err == nil && v > 0 {
		p.Base = v
	}
	if v, err := time.ParseDuration(strings.TrimSpace(getenvDefault("REPORT_RETRY_MAX", ""))); err == nil && v > 0 {
		p.Max = v
	}
	return p
}

func (p DeliveryPolicy) backoff() retry.Backoff {
	base := p.Base
	if base <= 0 {
		base = DefaultDeliveryPolicy.Base
	}
	b := retry.NewExponential(base)
	if p.Max > 0 {
		b = retry.WithCappedDuration(p.Max, b)
	}
	return retry.WithMaxRetries(p.MaxRetries, b)
}

type CalculationUseCase struct {
	repo     interfaces.ICalculationRepository
	calc     *calculator.Calculator
	renderer interfaces.IReportRenderer
	sender   interfaces.IReportSender
	policy   DeliveryPolicy
}

var _ ICalculationUseCase = (*CalculationUseCase)(nil)

func NewCalculationUseCase(
	repo interfaces.ICalculationRepository,
	calc *calculator.Calculator,
	renderer interfaces.IReportRenderer,
	sender interfaces.IReportSender,
	policy DeliveryPolicy,
) *CalculationUseCase {
	if calc == nil {
		calc = calculator.New(calculator.DefaultCatalog())
	}
	return &CalculationUseCase{repo: repo, calc: calc, renderer: renderer, sender: sender, policy: policy}
}

func (u *CalculationUseCase) Calculate(ctx context.Context, in entities.CalculatorInput, contato entities.Contact) (entities.CalculationRecord, error) {
	log.Printf("[calculation][usecase] calculate start employees=%d environments=%d", in.NumeroFuncionarios, len(in.Ambientes))
	if err := ValidateInput(in); err != nil {
		log.Printf("[calculation][usecase] invalid input err=%v", err)
		return entities.CalculationRecord{}, err
	}
	contato = normalizeContact(contato)
	if contato.Email != "" && !strings.Contains(contato.Email, "@") {
		log.Printf("[calculation][usecase] invalid contact email=%q", contato.Email)
		return entities.CalculationRecord{}, ErrInvalidContact
	}

	now := time.Now().UTC()
	rec := entities.CalculationRecord{
		ID:           uuid.NewString(),
		Input:        in,
		Result:       u.calc.Calculate(in),
		Contato:      contato,
		ReportStatus: entities.ReportStatusPendente,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := u.repo.Create(ctx, rec)
	if err != nil {
		log.Printf("[calculation][usecase] repository create failed id=%s err=%v", rec.ID, err)
		return entities.CalculationRecord{}, err
	}
	log.Printf("[calculation][usecase] calculate success id=%s total=%.2f discounted=%.2f", created.ID, created.Result.CustoMensalTotal, created.Result.CustoComDesconto)
	return created, nil
}

func (u *CalculationUseCase) Preview(_ context.Context, in entities.CalculatorInput) (entities.CalculationResult, error) {
	if err := ValidateInput(in); err != nil {
		return entities.CalculationResult{}, err
	}
	return u.calc.Calculate(in), nil
}

func (u *CalculationUseCase) GetByID(ctx context.Context, id string) (entities.CalculationRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CalculationRecord{}, ErrInvalidCalculationID
	}
	rec, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.CalculationRecord{}, err
	}
	if rec.ID == "" {
		return entities.CalculationRecord{}, ErrCalculationNotFound
	}
	return rec, nil
}

func (u *CalculationUseCase) RenderPDF(ctx context.Context, id string) ([]byte, error) {
	if u.renderer == nil {
		return nil, ErrReportRendererNotConfig
	}
	rec, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.renderer.PDF(rec)
}

func (u *CalculationUseCase) RenderXLSX(ctx context.Context, id string) ([]byte, error) {
	if u.renderer == nil {
		return nil, ErrReportRendererNotConfig
	}
	rec, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.renderer.XLSX(rec)
}

// DeliverReport sends the report of a stored calculation to its contact.
//
// The record is claimed with a conditional write before anything is sent, so
// concurrent callers cannot deliver twice. A failed delivery is recorded as
// falhou and may be claimed again.
func (u *CalculationUseCase) DeliverReport(ctx context.Context, id string) (entities.CalculationRecord, error) {
	log.Printf("[calculation][usecase] deliver-report start raw_id=%q", id)
	if u.renderer == nil {
		return entities.CalculationRecord{}, ErrReportRendererNotConfig
	}
	if u.sender == nil {
		return entities.CalculationRecord{}, ErrReportSenderNotConfig
	}

	rec, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.CalculationRecord{}, err
	}
	if strings.TrimSpace(rec.Contato.Email) == "" {
		log.Printf("[calculation][usecase] no contact e-mail id=%s", rec.ID)
		return entities.CalculationRecord{}, ErrInvalidContact
	}
	if !rec.ReportStatus.Claimable() {
		log.Printf("[calculation][usecase] report not claimable id=%s status=%s", rec.ID, rec.ReportStatus)
		return entities.CalculationRecord{}, ErrReportAlreadyDelivered
	}

	claimed, err := u.repo.ClaimReportDelivery(ctx, rec.ID)
	if err != nil {
		log.Printf("[calculation][usecase] claim failed id=%s err=%v", rec.ID, err)
		return entities.CalculationRecord{}, err
	}
	if claimed.ID == "" {
		log.Printf("[calculation][usecase] claim lost id=%s", rec.ID)
		return entities.CalculationRecord{}, ErrReportAlreadyDelivered
	}
	log.Printf("[calculation][usecase] claimed id=%s attempts=%d", claimed.ID, claimed.ReportAttempts)

	attachments, err := u.attachments(claimed)
	if err != nil {
		log.Printf("[calculation][usecase] render failed id=%s err=%v", claimed.ID, err)
		return u.markFailed(ctx, claimed.ID, err)
	}

	tries := 0
	sendErr := retry.Do(ctx, u.policy.backoff(), func(ctx context.Context) error {
		tries++
		if err := u.sender.Send(ctx, claimed, attachments); err != nil {
			log.Printf("[calculation][usecase] send attempt failed id=%s try=%d err=%v", claimed.ID, tries, err)
			return retry.RetryableError(err)
		}
		return nil
	})
	if sendErr != nil {
		return u.markFailed(ctx, claimed.ID, sendErr)
	}

	// The outcome must be recorded even when the caller has gone away,
	// otherwise the claim stays in enviando.
	updated, err := u.repo.UpdateReportStatus(context.WithoutCancel(ctx), claimed.ID, entities.ReportStatusEnviado)
	if err != nil {
		log.Printf("[calculation][usecase] mark sent failed id=%s err=%v", claimed.ID, err)
		return entities.CalculationRecord{}, err
	}
	if updated.ID == "" {
		return entities.CalculationRecord{}, ErrCalculationNotFound
	}
	log.Printf("[calculation][usecase] deliver-report success id=%s tries=%d", updated.ID, tries)
	return updated, nil
}

func (u *CalculationUseCase) attachments(rec entities.CalculationRecord) ([]entities.ReportAttachment, error) {
	pdf, err := u.renderer.PDF(rec)
	if err != nil {
		return nil, err
	}
	xlsx, err := u.renderer.XLSX(rec)
	if err != nil {
		return nil, err
	}
	return []entities.ReportAttachment{
		{FileName: fmt.Sprintf("relatorio-%s.pdf", rec.ID), ContentType: ContentTypePDF, Content: pdf},
		{FileName: fmt.Sprintf("relatorio-%s.xlsx", rec.ID), ContentType: ContentTypeXLSX, Content: xlsx},
	}, nil
}

func (u *CalculationUseCase) markFailed(ctx context.Context, id string, cause error) (entities.CalculationRecord, error) {
	if _, err := u.repo.UpdateReportStatus(context.WithoutCancel(ctx), id, entities.ReportStatusFalhou); err != nil {
		log.Printf("[calculation][usecase] mark failed failed id=%s err=%v", id, err)
	}
	log.Printf("[calculation][usecase] deliver-report failed id=%s err=%v", id, cause)
	return entities.CalculationRecord{}, fmt.Errorf("%w: %v", ErrReportDeliveryFailed, cause)
}

func normalizeContact(c entities.Contact) entities.Contact {
	c.Nome = strings.TrimSpace(c.Nome)
	c.Empresa = strings.TrimSpace(c.Empresa)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.Telefone = strings.TrimSpace(c.Telefone)
	return c
}
