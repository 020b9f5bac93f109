package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"insumos_limpeza/internal/domain/calculator"
	"insumos_limpeza/internal/domain/entities"
	mock_interfaces "insumos_limpeza/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var fastPolicy = DeliveryPolicy{MaxRetries: 2, Base: time.Millisecond, Max: 2 * time.Millisecond}

func officeInput() entities.CalculatorInput {
	return entities.CalculatorInput{
		NumeroFuncionarios:                25,
		FrequenciaLimpezaManutencaoDiaria: entities.FrequenciaDiaria,
		NivelSujidadeGeral:                entities.NivelMedio,
		Ambientes: []entities.Environment{
			{ID: "amb-1", Tipo: entities.EnvironmentEscritorio, AreaM2: 200},
		},
	}
}

func deliverable(id string, status entities.ReportStatus) entities.CalculationRecord {
	return entities.CalculationRecord{
		ID:           id,
		Input:        officeInput(),
		Result:       calculator.Calculate(officeInput()),
		Contato:      entities.Contact{Nome: "Ana", Email: "ana@empresa.com.br"},
		ReportStatus: status,
	}
}

func TestCalculationUseCase_Calculate(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		uc := NewCalculationUseCase(nil, nil, nil, nil, fastPolicy)
		in := officeInput()
		in.NumeroFuncionarios = -1
		_, err := uc.Calculate(context.Background(), in, entities.Contact{})
		if !errors.Is(err, ErrInvalidCalculatorInput) {
			t.Fatalf("expected ErrInvalidCalculatorInput, got %v", err)
		}
	})

	t.Run("invalid contact e-mail", func(t *testing.T) {
		uc := NewCalculationUseCase(nil, nil, nil, nil, fastPolicy)
		_, err := uc.Calculate(context.Background(), officeInput(), entities.Contact{Email: "not-an-email"})
		if !errors.Is(err, ErrInvalidContact) {
			t.Fatalf("expected ErrInvalidContact, got %v", err)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICalculationRepository(ctrl)
		uc := NewCalculationUseCase(repo, nil, nil, nil, fastPolicy)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.CalculationRecord{}, errors.New("db"))

		_, err := uc.Calculate(context.Background(), officeInput(), entities.Contact{})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success persists result and contact", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICalculationRepository(ctrl)
		uc := NewCalculationUseCase(repo, calculator.New(calculator.DefaultCatalog()), nil, nil, fastPolicy)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.CalculationRecord{})).DoAndReturn(
			func(_ context.Context, r entities.CalculationRecord) (entities.CalculationRecord, error) {
				if r.ID == "" {
					t.Fatalf("id must be generated")
				}
				if r.ReportStatus != entities.ReportStatusPendente {
					t.Fatalf("expected pendente, got %s", r.ReportStatus)
				}
				if r.Contato.Email != "ana@empresa.com.br" || r.Contato.Nome != "Ana" {
					t.Fatalf("contact not normalized: %+v", r.Contato)
				}
				if r.Result.TotalAreaM2 != 200 || r.Result.PercentualDesconto != 15 {
					t.Fatalf("unexpected result: %+v", r.Result)
				}
				if r.CreatedAt.IsZero() || !r.CreatedAt.Equal(r.UpdatedAt) {
					t.Fatalf("timestamps must be set")
				}
				return r, nil
			},
		)

		rec, err := uc.Calculate(context.Background(), officeInput(), entities.Contact{Nome: " Ana ", Email: " Ana@Empresa.com.br "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Result.CustoComDesconto <= 0 {
			t.Fatalf("expected priced result")
		}
	})
}

func TestCalculationUseCase_Preview(t *testing.T) {
	uc := NewCalculationUseCase(nil, nil, nil, nil, fastPolicy)

	res, err := uc.Preview(context.Background(), officeInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.NumeroFuncionarios != 25 || res.TotalAreaM2 != 200 {
		t.Fatalf("unexpected result: %+v", res)
	}

	in := officeInput()
	in.Ambientes = append(in.Ambientes, entities.Environment{ID: "amb-1", Tipo: entities.EnvironmentEstoque, AreaM2: 10})
	if _, err := uc.Preview(context.Background(), in); !errors.Is(err, ErrInvalidCalculatorInput) {
		t.Fatalf("expected duplicate id rejection, got %v", err)
	}
}

func TestCalculationUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewCalculationUseCase(nil, nil, nil, nil, fastPolicy)
		if _, err := uc.GetByID(context.Background(), "  "); !errors.Is(err, ErrInvalidCalculationID) {
			t.Fatalf("expected ErrInvalidCalculationID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICalculationRepository(ctrl)
		uc := NewCalculationUseCase(repo, nil, nil, nil, fastPolicy)
		repo.EXPECT().GetByID(gomock.Any(), "calc-1").Return(entities.CalculationRecord{}, nil)

		if _, err := uc.GetByID(context.Background(), "calc-1"); !errors.Is(err, ErrCalculationNotFound) {
			t.Fatalf("expected ErrCalculationNotFound, got %v", err)
		}
	})

	t.Run("success trims id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICalculationRepository(ctrl)
		uc := NewCalculationUseCase(repo, nil, nil, nil, fastPolicy)
		repo.EXPECT().GetByID(gomock.Any(), "calc-1").Return(entities.CalculationRecord{ID: "calc-1"}, nil)

		rec, err := uc.GetByID(context.Background(), " calc-1 ")
		if err != nil || rec.ID != "calc-1" {
			t.Fatalf("unexpected result err=%v rec=%+v", err, rec)
		}
	})
}

func TestCalculationUseCase_Render(t *testing.T) {
	t.Run("renderer not configured", func(t *testing.T) {
		uc := NewCalculationUseCase(nil, nil, nil, nil, fastPolicy)
		if _, err := uc.RenderPDF(context.Background(), "calc-1"); !errors.Is(err, ErrReportRendererNotConfig) {
			t.Fatalf("expected ErrReportRendererNotConfig, got %v", err)
		}
	})

	t.Run("pdf and xlsx", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICalculationRepository(ctrl)
		renderer := mock_interfaces.NewMockIReportRenderer(ctrl)
		uc := NewCalculationUseCase(repo, nil, renderer, nil, fastPolicy)

		rec := deliverable("calc-1", entities.ReportStatusPendente)
		repo.EXPECT().GetByID(gomock.Any(), "calc-1").Return(rec, nil).Times(2)
		renderer.EXPECT().PDF(rec).Return([]byte("%PDF"), nil)
		renderer.EXPECT().XLSX(rec).Return([]byte("PK"), nil)

		pdf, err := uc.RenderPDF(context.Background(), "calc-1")
		if err != nil || string(pdf) != "%PDF" {
			t.Fatalf("unexpected pdf err=%v", err)
		}
		xlsx, err := uc.RenderXLSX(context.Background(), "calc-1")
		if err != nil || string(xlsx) != "PK" {
			t.Fatalf("unexpected xlsx err=%v", err)
		}
	})
}

func TestCalculationUseCase_DeliverReport(t *testing.T) {
	t.Run("dependencies not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		renderer := mock_interfaces.NewMockIReportRenderer(ctrl)

		uc := NewCalculationUseCase(nil, nil, nil, nil, fastPolicy)
		if _, err := uc.DeliverReport(context.Background(), "calc-1"); !errors.Is(err, ErrReportRendererNotConfig) {
			t.Fatalf("expected ErrReportRendererNotConfig, got %v", err)
		}
		uc = NewCalculationUseCase(nil, nil, renderer, nil, fastPolicy)
		if _, err := uc.DeliverReport(context.Background(), "calc-1"); !errors.Is(err, ErrReportSenderNotConfig) {
			t.Fatalf("expected ErrReportSenderNotConfig, got %v", err)
		}
	})

	t.Run("no contact e-mail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICalculationRepository(ctrl)
		renderer := mock_interfaces.NewMockIReportRenderer(ctrl)
		sender := mock_interfaces.NewMockIReportSender(ctrl)
		uc := NewCalculationUseCase(repo, nil, renderer, sender, fastPolicy)

		rec := deliverable("calc-1", entities.ReportStatusPendente)
		rec.Contato.Email = ""
		repo.EXPECT().GetByID(gomock.Any(), "calc-1").Return(rec, nil)

		if _, err := uc.DeliverReport(context.Background(), "calc-1"); !errors.Is(err, ErrInvalidContact) {
			t.Fatalf("expected ErrInvalidContact, got %v", err)
		}
	})

	for _, status := range []entities.ReportStatus{entities.ReportStatusEnviado, entities.ReportStatusEnviando} {
		t.Run("already "+string(status), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockICalculationRepository(ctrl)
			renderer := mock_interfaces.NewMockIReportRenderer(ctrl)
			sender := mock_interfaces.NewMockIReportSender(ctrl)
			uc := NewCalculationUseCase(repo, nil, renderer, sender, fastPolicy)

			repo.EXPECT().GetByID(gomock.Any(), "calc-1").Return(deliverable("calc-1", status), nil)

			if _, err := uc.DeliverReport(context.Background(), "calc-1"); !errors.Is(err, ErrReportAlreadyDelivered) {
				t.Fatalf("expected ErrReportAlreadyDelivered, got %v", err)
			}
		})
	}

	t.Run("claim lost to a concurrent caller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICalculationRepository(ctrl)
		renderer := mock_interfaces.NewMockIReportRenderer(ctrl)
		sender := mock_interfaces.NewMockIReportSender(ctrl)
		uc := NewCalculationUseCase(repo, nil, renderer, sender, fastPolicy)

		repo.EXPECT().GetByID(gomock.Any(), "calc-1").Return(deliverable("calc-1", entities.ReportStatusPendente), nil)
		repo.EXPECT().ClaimReportDelivery(gomock.Any(), "calc-1").Return(entities.CalculationRecord{}, nil)

		if _, err := uc.DeliverReport(context.Background(), "calc-1"); !errors.Is(err, ErrReportAlreadyDelivered) {
			t.Fatalf("expected ErrReportAlreadyDelivered, got %v", err)
		}
	})

	t.Run("success after a transient failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICalculationRepository(ctrl)
		renderer := mock_interfaces.NewMockIReportRenderer(ctrl)
		sender := mock_interfaces.NewMockIReportSender(ctrl)
		uc := NewCalculationUseCase(repo, nil, renderer, sender, fastPolicy)

		rec := deliverable("calc-1", entities.ReportStatusFalhou)
		claimed := rec
		claimed.ReportStatus = entities.ReportStatusEnviando
		claimed.ReportAttempts = 2
		sent := claimed
		sent.ReportStatus = entities.ReportStatusEnviado

		repo.EXPECT().GetByID(gomock.Any(), "calc-1").Return(rec, nil)
		repo.EXPECT().ClaimReportDelivery(gomock.Any(), "calc-1").Return(claimed, nil)
		renderer.EXPECT().PDF(claimed).Return([]byte("%PDF"), nil)
		renderer.EXPECT().XLSX(claimed).Return([]byte("PK"), nil)
		gomock.InOrder(
			sender.EXPECT().Send(gomock.Any(), claimed, gomock.Any()).Return(errors.New("421 try again")),
			sender.EXPECT().Send(gomock.Any(), claimed, gomock.Any()).DoAndReturn(
				func(_ context.Context, r entities.CalculationRecord, atts []entities.ReportAttachment) error {
					if len(atts) != 2 {
						t.Fatalf("expected pdf and xlsx attachments, got %d", len(atts))
					}
					if atts[0].FileName != "relatorio-calc-1.pdf" || atts[0].ContentType != ContentTypePDF {
						t.Fatalf("unexpected pdf attachment: %+v", atts[0])
					}
					if atts[1].FileName != "relatorio-calc-1.xlsx" || atts[1].ContentType != ContentTypeXLSX {
						t.Fatalf("unexpected xlsx attachment: %+v", atts[1])
					}
					if r.Result.CustoComDesconto != rec.Result.CustoComDesconto {
						t.Fatalf("stored result must be sent unchanged")
					}
					return nil
				},
			),
		)
		repo.EXPECT().UpdateReportStatus(gomock.Any(), "calc-1", entities.ReportStatusEnviado).Return(sent, nil)

		res, err := uc.DeliverReport(context.Background(), "calc-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ReportStatus != entities.ReportStatusEnviado {
			t.Fatalf("expected enviado, got %s", res.ReportStatus)
		}
	})

	t.Run("retries exhausted marks falhou", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICalculationRepository(ctrl)
		renderer := mock_interfaces.NewMockIReportRenderer(ctrl)
		sender := mock_interfaces.NewMockIReportSender(ctrl)
		uc := NewCalculationUseCase(repo, nil, renderer, sender, fastPolicy)

		rec := deliverable("calc-1", entities.ReportStatusPendente)
		claimed := rec
		claimed.ReportStatus = entities.ReportStatusEnviando

		repo.EXPECT().GetByID(gomock.Any(), "calc-1").Return(rec, nil)
		repo.EXPECT().ClaimReportDelivery(gomock.Any(), "calc-1").Return(claimed, nil)
		renderer.EXPECT().PDF(gomock.Any()).Return([]byte("%PDF"), nil)
		renderer.EXPECT().XLSX(gomock.Any()).Return([]byte("PK"), nil)
		// one attempt plus MaxRetries
		sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down")).Times(3)
		repo.EXPECT().UpdateReportStatus(gomock.Any(), "calc-1", entities.ReportStatusFalhou).Return(claimed, nil)

		_, err := uc.DeliverReport(context.Background(), "calc-1")
		if !errors.Is(err, ErrReportDeliveryFailed) {
			t.Fatalf("expected ErrReportDeliveryFailed, got %v", err)
		}
	})

	t.Run("caller cancellation still records falhou", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICalculationRepository(ctrl)
		renderer := mock_interfaces.NewMockIReportRenderer(ctrl)
		sender := mock_interfaces.NewMockIReportSender(ctrl)
		uc := NewCalculationUseCase(repo, nil, renderer, sender, fastPolicy)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		rec := deliverable("calc-1", entities.ReportStatusPendente)
		claimed := rec
		claimed.ReportStatus = entities.ReportStatusEnviando
		failed := claimed
		failed.ReportStatus = entities.ReportStatusFalhou
		stored := claimed.ReportStatus

		repo.EXPECT().GetByID(gomock.Any(), "calc-1").Return(rec, nil)
		repo.EXPECT().ClaimReportDelivery(gomock.Any(), "calc-1").Return(claimed, nil)
		renderer.EXPECT().PDF(gomock.Any()).Return([]byte("%PDF"), nil)
		renderer.EXPECT().XLSX(gomock.Any()).Return([]byte("PK"), nil)
		sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, entities.CalculationRecord, []entities.ReportAttachment) error {
				cancel()
				return errors.New("smtp: connection reset")
			},
		).MinTimes(1)
		repo.EXPECT().UpdateReportStatus(gomock.Any(), "calc-1", entities.ReportStatusFalhou).DoAndReturn(
			func(ctx context.Context, _ string, _ entities.ReportStatus) (entities.CalculationRecord, error) {
				if err := ctx.Err(); err != nil {
					return entities.CalculationRecord{}, err
				}
				stored = failed.ReportStatus
				return failed, nil
			},
		)

		_, err := uc.DeliverReport(ctx, "calc-1")
		if !errors.Is(err, ErrReportDeliveryFailed) {
			t.Fatalf("expected ErrReportDeliveryFailed, got %v", err)
		}
		if stored != entities.ReportStatusFalhou {
			t.Fatalf("expected stored status falhou, got %s", stored)
		}
	})

	t.Run("render failure marks falhou without sending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICalculationRepository(ctrl)
		renderer := mock_interfaces.NewMockIReportRenderer(ctrl)
		sender := mock_interfaces.NewMockIReportSender(ctrl)
		uc := NewCalculationUseCase(repo, nil, renderer, sender, fastPolicy)

		rec := deliverable("calc-1", entities.ReportStatusPendente)
		repo.EXPECT().GetByID(gomock.Any(), "calc-1").Return(rec, nil)
		repo.EXPECT().ClaimReportDelivery(gomock.Any(), "calc-1").Return(rec, nil)
		renderer.EXPECT().PDF(gomock.Any()).Return(nil, errors.New("font missing"))
		repo.EXPECT().UpdateReportStatus(gomock.Any(), "calc-1", entities.ReportStatusFalhou).Return(rec, nil)

		_, err := uc.DeliverReport(context.Background(), "calc-1")
		if !errors.Is(err, ErrReportDeliveryFailed) {
			t.Fatalf("expected ErrReportDeliveryFailed, got %v", err)
		}
	})
}

func TestDeliveryPolicyFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("REPORT_MAX_RETRIES", "")
		t.Setenv("REPORT_RETRY_BASE", "")
		t.Setenv("REPORT_RETRY_MAX", "")
		if got := DeliveryPolicyFromEnv(); got != DefaultDeliveryPolicy {
			t.Fatalf("expected defaults, got %+v", got)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("REPORT_MAX_RETRIES", "5")
		t.Setenv("REPORT_RETRY_BASE", "250ms")
		t.Setenv("REPORT_RETRY_MAX", "10s")
		got := DeliveryPolicyFromEnv()
		if got.MaxRetries != 5 || got.Base != 250*time.Millisecond || got.Max != 10*time.Second {
			t.Fatalf("unexpected policy: %+v", got)
		}
	})

	t.Run("malformed values keep defaults", func(t *testing.T) {
		t.Setenv("REPORT_MAX_RETRIES", "-1")
		t.Setenv("REPORT_RETRY_BASE", "soon")
		t.Setenv("REPORT_RETRY_MAX", "0s")
		if got := DeliveryPolicyFromEnv(); got != DefaultDeliveryPolicy {
			t.Fatalf("expected defaults, got %+v", got)
		}
	})
}
