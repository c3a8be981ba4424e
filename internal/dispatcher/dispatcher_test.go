package dispatcher_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"techflow-web-backend/internal/dispatcher"
	"techflow-web-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spySink records every lead it sends and can be forced to fail.
type spySink struct {
	name       string
	sendErr    error
	prepareErr error
	delay      time.Duration
	panics     bool

	mu       sync.Mutex
	received []*domain.Lead
}

func (s *spySink) Name() string { return s.name }

func (s *spySink) Prepare(lead *domain.Lead) (dispatcher.SendFunc, error) {
	if s.prepareErr != nil {
		return nil, s.prepareErr
	}
	return func(ctx context.Context) error {
		if s.panics {
			panic("boom")
		}
		if s.delay > 0 {
			select {
			case <-time.After(s.delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if s.sendErr != nil {
			return s.sendErr
		}
		s.mu.Lock()
		s.received = append(s.received, lead)
		s.mu.Unlock()
		return nil
	}, nil
}

func (s *spySink) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.received)
}

func contactLead() *domain.Lead {
	return domain.NewContactLead(&domain.ContactRequest{
		Name:    "Ana Pérez",
		Email:   "ana@example.com",
		Phone:   "3001234567",
		Service: domain.ServiceDesarrolloWeb,
		Budget:  "3m-5m",
		Message: "Necesito una tienda online",
		Consent: true,
	}, domain.RequestMeta{ClientIP: "10.0.0.1", UserAgent: "test"}, time.Now())
}

func TestDispatch_PartialFailureStillSucceeds(t *testing.T) {
	failing := &spySink{name: "failing", sendErr: errors.New("connection refused")}
	ok := &spySink{name: "ok"}

	report, err := dispatcher.New([]dispatcher.Sink{failing, ok}).Dispatch(context.Background(), contactLead())
	require.NoError(t, err)

	assert.Equal(t, 1, ok.calls(), "succeeding sink received the lead")
	assert.Equal(t, 1, report.Succeeded())
	assert.Equal(t, 1, report.Failed())
	assert.Equal(t, "failing", report.Results[0].Sink)
	assert.EqualError(t, report.Results[0].Err, "connection refused")
}

func TestDispatch_MissingFieldsReachNoSink(t *testing.T) {
	spy := &spySink{name: "spy"}
	lead := contactLead()
	lead.Email = ""

	report, err := dispatcher.New([]dispatcher.Sink{spy}).Dispatch(context.Background(), lead)
	assert.ErrorIs(t, err, dispatcher.ErrMissingRequiredFields)
	assert.Contains(t, err.Error(), "email")
	assert.Nil(t, report)
	assert.Equal(t, 0, spy.calls())
}

func TestDispatch_PrepareFailureSendsNothing(t *testing.T) {
	first := &spySink{name: "first"}
	broken := &spySink{name: "broken", prepareErr: errors.New("template exploded")}

	_, err := dispatcher.New([]dispatcher.Sink{first, broken}).Dispatch(context.Background(), contactLead())
	assert.ErrorIs(t, err, dispatcher.ErrInternalProcessing)
	assert.Contains(t, err.Error(), "broken")
	assert.Equal(t, 0, first.calls())
}

func TestDispatch_SlowSinkTimesOutWithoutBlockingOthers(t *testing.T) {
	slow := &spySink{name: "slow", delay: time.Second}
	fast := &spySink{name: "fast"}

	start := time.Now()
	report, err := dispatcher.New([]dispatcher.Sink{slow, fast}, dispatcher.WithTimeout(50*time.Millisecond)).
		Dispatch(context.Background(), contactLead())
	require.NoError(t, err)

	assert.Less(t, time.Since(start), 500*time.Millisecond)
	assert.ErrorIs(t, report.Results[0].Err, context.DeadlineExceeded)
	assert.True(t, report.Results[1].OK())
	assert.Equal(t, 1, fast.calls())
}

func TestDispatch_CallerCancellationDoesNotAbortDelivery(t *testing.T) {
	sink := &spySink{name: "sink", delay: 20 * time.Millisecond}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := dispatcher.New([]dispatcher.Sink{sink}).Dispatch(ctx, contactLead())
	require.NoError(t, err)
	assert.True(t, report.Results[0].OK())
	assert.Equal(t, 1, sink.calls())
}

func TestDispatch_PanickingSinkIsIsolated(t *testing.T) {
	bad := &spySink{name: "bad", panics: true}
	good := &spySink{name: "good"}

	report, err := dispatcher.New([]dispatcher.Sink{bad, good}).Dispatch(context.Background(), contactLead())
	require.NoError(t, err)
	assert.Error(t, report.Results[0].Err)
	assert.Equal(t, 1, good.calls())
}

func TestDispatch_NoSinks(t *testing.T) {
	report, err := dispatcher.New(nil).Dispatch(context.Background(), contactLead())
	require.NoError(t, err)
	assert.Empty(t, report.Results)
}

func TestDispatcher_SinkNames(t *testing.T) {
	d := dispatcher.New([]dispatcher.Sink{&spySink{name: "webhook"}, &spySink{name: "email"}})
	assert.Equal(t, []string{"webhook", "email"}, d.SinkNames())
}
