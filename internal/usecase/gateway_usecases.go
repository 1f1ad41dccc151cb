package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/xavierca1/evolution-relay/internal/entity"
	"github.com/xavierca1/evolution-relay/internal/infra/integration/evolution"
)

// As operações abaixo são síncronas: a resposta do gateway volta direto ao chamador.
// Erros do gateway passam intactos (*evolution.APIError) para o handler decidir o status HTTP.

type HandleLabelUseCase struct {
	Gateway         Gateway
	DefaultInstance string
}

func NewHandleLabelUseCase(gateway Gateway, defaultInstance string) *HandleLabelUseCase {
	return &HandleLabelUseCase{Gateway: gateway, DefaultInstance: defaultInstance}
}

func (uc *HandleLabelUseCase) Execute(ctx context.Context, input LabelRequest) (map[string]any, error) {
	validationErrors := validateRecipient(input.Number, 0)
	if strings.TrimSpace(input.LabelID) == "" {
		validationErrors = append(validationErrors, ValidationError{"label_id", "is required"})
	}
	if len(validationErrors) > 0 {
		return nil, validationFailure(validationErrors)
	}

	label, err := entity.NewLabel(input.Number, input.LabelID, input.Action)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidLabelAction) {
			return nil, &DomainError{Code: CodeInvalidLabel, Message: err.Error()}
		}
		return nil, err
	}

	return uc.Gateway.HandleLabel(ctx, pickInstance(input.Instance, uc.DefaultInstance), label)
}

type OfferCallUseCase struct {
	Gateway         Gateway
	DefaultInstance string
}

func NewOfferCallUseCase(gateway Gateway, defaultInstance string) *OfferCallUseCase {
	return &OfferCallUseCase{Gateway: gateway, DefaultInstance: defaultInstance}
}

func (uc *OfferCallUseCase) Execute(ctx context.Context, input CallRequest) (map[string]any, error) {
	validationErrors := validateRecipient(input.Number, 0)
	if input.CallDuration < 0 {
		validationErrors = append(validationErrors, ValidationError{"call_duration", "must not be negative"})
	}
	if len(validationErrors) > 0 {
		return nil, validationFailure(validationErrors)
	}

	call := entity.NewCall(input.Number, input.IsVideo, input.CallDuration)
	return uc.Gateway.OfferCall(ctx, pickInstance(input.Instance, uc.DefaultInstance), call)
}

type InstanceUseCase struct {
	Gateway         Gateway
	DefaultInstance string
}

func NewInstanceUseCase(gateway Gateway, defaultInstance string) *InstanceUseCase {
	return &InstanceUseCase{Gateway: gateway, DefaultInstance: defaultInstance}
}

func (uc *InstanceUseCase) State(ctx context.Context, instance string) (map[string]any, error) {
	return uc.Gateway.ConnectionState(ctx, pickInstance(instance, uc.DefaultInstance))
}

func (uc *InstanceUseCase) Create(ctx context.Context, input CreateInstanceRequest) (map[string]any, error) {
	if strings.TrimSpace(input.InstanceName) == "" {
		return nil, validationFailure([]ValidationError{{"instance_name", "is required"}})
	}
	return uc.Gateway.CreateInstance(ctx, evolution.CreateInstanceInput{
		InstanceName: input.InstanceName,
		Token:        input.Token,
		Number:       input.Number,
		QRCode:       input.QRCode,
		Integration:  input.Integration,
	})
}

// List devolve todas as instâncias, ou só a nomeada.
func (uc *InstanceUseCase) List(ctx context.Context, instanceName string) (map[string]any, error) {
	return uc.Gateway.FetchInstances(ctx, instanceName)
}

func pickInstance(instance, fallback string) string {
	if instance == "" {
		return fallback
	}
	return instance
}
