package service

import (
	"context"
	"testing"
	"time"

	"github.com/kuldeepak/Kellerfensteronline/internal/dto"
	"github.com/kuldeepak/Kellerfensteronline/internal/repository/memory"
	"github.com/kuldeepak/Kellerfensteronline/pkg/configurator"

	"github.com/stretchr/testify/assert"
)

func newSessionFixture() ISessionService {
	catalog := &fakeCatalogService{cfg: testConfig()}
	repo := memory.NewSessionRepository(time.Minute)
	return NewSessionService(catalog, repo)
}

func TestSessionCreate(t *testing.T) {
	svc := newSessionFixture()

	res, err := svc.Create(context.Background(), &dto.CreateSessionRequest{ProductId: "demo-kellerfenster"})

	assert.NoError(t, err)
	assert.NotEmpty(t, res.Id)
	assert.Equal(t, configurator.StatusUnstarted, res.Status)
	assert.Equal(t, "fenstertyp", res.CurrentStep)
	assert.Equal(t, []string{"fenstertyp", "befestigung", "masse"}, res.ActiveFlow)
	assert.NotNil(t, res.Price)
	assert.InDelta(t, 50, *res.Price, 0.001)
}

func TestSessionCreateFromPermalink(t *testing.T) {
	svc := newSessionFixture()

	res, err := svc.Create(context.Background(), &dto.CreateSessionRequest{
		ProductId: "demo-kellerfenster",
		State:     "sel_fenstertyp=dachfenster&m_breite=500&qty=2",
	})

	assert.NoError(t, err)
	assert.Equal(t, "dachfenster", res.Selections["fenstertyp"])
	assert.Equal(t, 500, res.Measurements[configurator.FieldWidth])
	assert.Equal(t, 2, res.Quantity)
	// Branching selection replaced the flow.
	assert.Equal(t, []string{"fenstertyp", "masse"}, res.ActiveFlow)
}

func TestSessionEventRoundTrip(t *testing.T) {
	svc := newSessionFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateSessionRequest{ProductId: "demo-kellerfenster"})
	assert.NoError(t, err)

	res, err := svc.ApplyEvent(ctx, created.Id, &dto.SessionEventRequest{
		Type: "select", StepKey: "fenstertyp", Value: "normal",
	})
	assert.NoError(t, err)
	assert.Equal(t, configurator.StatusInProgress, res.Status)

	res, err = svc.ApplyEvent(ctx, created.Id, &dto.SessionEventRequest{Type: "advance"})
	assert.NoError(t, err)
	assert.Equal(t, "befestigung", res.CurrentStep)

	// The next read sees the advanced state.
	res, err = svc.Show(ctx, created.Id)
	assert.NoError(t, err)
	assert.Equal(t, "befestigung", res.CurrentStep)
	assert.NotEmpty(t, res.Permalink)
}

func TestSessionFieldErrorsSurface(t *testing.T) {
	svc := newSessionFixture()
	ctx := context.Background()

	created, _ := svc.Create(ctx, &dto.CreateSessionRequest{
		ProductId: "demo-kellerfenster",
		State:     "sel_fenstertyp=dachfenster",
	})

	res, err := svc.ApplyEvent(ctx, created.Id, &dto.SessionEventRequest{Type: "advance"})
	assert.NoError(t, err)
	assert.Equal(t, "masse", res.CurrentStep)

	res, err = svc.ApplyEvent(ctx, created.Id, &dto.SessionEventRequest{
		Type: "measure", Field: configurator.FieldWidth, Amount: 200,
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, res.FieldErrors)
	assert.Equal(t, configurator.FieldWidth, res.FieldErrors[0].Field)

	// An invalid measurement blocks advancing.
	res, err = svc.ApplyEvent(ctx, created.Id, &dto.SessionEventRequest{Type: "advance"})
	assert.NoError(t, err)
	assert.Equal(t, "masse", res.CurrentStep)
	assert.NotEqual(t, configurator.StatusComplete, res.Status)
}

func TestSessionUnknownIdReturnsNil(t *testing.T) {
	svc := newSessionFixture()

	res, err := svc.Show(context.Background(), "nope")
	assert.NoError(t, err)
	assert.Nil(t, res)

	res, err = svc.ApplyEvent(context.Background(), "nope", &dto.SessionEventRequest{Type: "advance"})
	assert.NoError(t, err)
	assert.Nil(t, res)
}

func TestSessionUnknownEventType(t *testing.T) {
	svc := newSessionFixture()
	ctx := context.Background()

	created, _ := svc.Create(ctx, &dto.CreateSessionRequest{ProductId: "demo-kellerfenster"})

	_, err := svc.ApplyEvent(ctx, created.Id, &dto.SessionEventRequest{Type: "teleport"})
	assert.Error(t, err)
}
