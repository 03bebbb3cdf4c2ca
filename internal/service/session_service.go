package service

import (
	"context"
	"fmt"

	"github.com/kuldeepak/Kellerfensteronline/internal/dto"
	"github.com/kuldeepak/Kellerfensteronline/internal/repository/memory"
	"github.com/kuldeepak/Kellerfensteronline/pkg/configurator"

	"github.com/google/uuid"
)

type ISessionService interface {
	Create(ctx context.Context, req *dto.CreateSessionRequest) (*dto.SessionResponse, error)
	Show(ctx context.Context, sessionId string) (*dto.SessionResponse, error)
	ApplyEvent(ctx context.Context, sessionId string, req *dto.SessionEventRequest) (*dto.SessionResponse, error)
}

type sessionService struct {
	catalogService ICatalogService
	sessionRepo    *memory.SessionRepository
}

func NewSessionService(catalogService ICatalogService, sessionRepo *memory.SessionRepository) ISessionService {
	return &sessionService{
		catalogService: catalogService,
		sessionRepo:    sessionRepo,
	}
}

func (c *sessionService) Create(ctx context.Context, req *dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	cfg, err := c.catalogService.ResolveConfig(ctx, req.ProductId)
	if err != nil {
		return nil, err
	}

	var session configurator.Session
	if req.State != "" {
		// Hydrate from a permalink. Malformed values degrade to an
		// empty session; a broken link must never block the shopper.
		session = configurator.Rehydrate(cfg, configurator.DecodeState(req.State))
	} else {
		session = configurator.NewSession(cfg)
	}

	session.ID = uuid.NewString()
	session.ProductID = cfg.Product.ID
	c.sessionRepo.Save(session)

	return c.toResponse(cfg, session), nil
}

func (c *sessionService) Show(ctx context.Context, sessionId string) (*dto.SessionResponse, error) {
	session, found := c.sessionRepo.Get(sessionId)
	if !found {
		return nil, nil
	}

	cfg, err := c.catalogService.ResolveConfig(ctx, session.ProductID)
	if err != nil {
		return nil, err
	}

	return c.toResponse(cfg, session), nil
}

func (c *sessionService) ApplyEvent(ctx context.Context, sessionId string, req *dto.SessionEventRequest) (*dto.SessionResponse, error) {
	session, found := c.sessionRepo.Get(sessionId)
	if !found {
		return nil, nil
	}

	cfg, err := c.catalogService.ResolveConfig(ctx, session.ProductID)
	if err != nil {
		return nil, err
	}

	event, err := toEvent(req)
	if err != nil {
		return nil, err
	}

	session = configurator.Apply(cfg, session, event)
	c.sessionRepo.Save(session)

	return c.toResponse(cfg, session), nil
}

func toEvent(req *dto.SessionEventRequest) (configurator.Event, error) {
	switch req.Type {
	case "select":
		return configurator.SelectOption{StepKey: req.StepKey, Value: req.Value}, nil
	case "measure":
		return configurator.SetMeasurement{Field: req.Field, Value: req.Amount}, nil
	case "quantity":
		return configurator.SetQuantity{Quantity: req.Amount}, nil
	case "advance":
		return configurator.Advance{}, nil
	case "back":
		return configurator.Back{}, nil
	default:
		return nil, fmt.Errorf("unknown event type: %s", req.Type)
	}
}

func (c *sessionService) toResponse(cfg *configurator.Config, session configurator.Session) *dto.SessionResponse {
	res := &dto.SessionResponse{
		Id:           session.ID,
		ProductId:    session.ProductID,
		Selections:   session.Selections,
		Measurements: session.Measurements,
		Quantity:     session.Quantity,
		ActiveFlow:   session.ActiveFlow,
		CurrentStep:  session.CurrentStep,
		Status:       session.Status,
		Permalink:    configurator.EncodeState(session),
	}

	if step := cfg.StepByKey(session.CurrentStep); step != nil {
		res.FieldErrors = configurator.StepErrors(step, session)
	}

	price, breakdown := configurator.CalculatePrice(cfg, session.Selections, session.Measurements, session.Quantity)
	res.Price = &price
	res.Breakdown = &breakdown

	return res
}
