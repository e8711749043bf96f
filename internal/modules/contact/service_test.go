package contact

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceSubmitValidation(t *testing.T) {
	t.Parallel()

	valid := Inquiry{
		Name:    gofakeit.Name(),
		Phone:   gofakeit.Phone(),
		Message: "Can you do a custom A3 poster?",
	}

	tests := []struct {
		name   string
		mutate func(q *Inquiry)
	}{
		{name: "blank name", mutate: func(q *Inquiry) { q.Name = "" }},
		{name: "blank phone", mutate: func(q *Inquiry) { q.Phone = "  " }},
		{name: "blank message", mutate: func(q *Inquiry) { q.Message = "" }},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := NewService(time.Second)
			q := valid
			tc.mutate(&q)

			_, err := svc.Submit(q)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.False(t, svc.Sent())
		})
	}
}

func TestServiceSubmitRendersInquiry(t *testing.T) {
	t.Parallel()

	svc := NewService(time.Second)
	rendered, err := svc.Submit(Inquiry{Name: "Jane", Phone: "+91 99999 00000", Message: "Hello"})
	require.NoError(t, err)

	assert.Contains(t, rendered, "New inquiry from Jane")
	assert.Contains(t, rendered, "Phone: +91 99999 00000")
	assert.Contains(t, rendered, "Hello")
	assert.True(t, svc.Sent())
}

func TestServiceSentFlagAutoResets(t *testing.T) {
	t.Parallel()

	svc := NewService(30 * time.Millisecond)
	_, err := svc.Submit(Inquiry{Name: "J", Phone: "1", Message: "m"})
	require.NoError(t, err)
	require.True(t, svc.Sent())

	assert.Eventually(t, func() bool { return !svc.Sent() }, time.Second, 5*time.Millisecond)
}

func TestServiceResubmitRestartsWindow(t *testing.T) {
	t.Parallel()

	svc := NewService(40 * time.Millisecond)
	_, err := svc.Submit(Inquiry{Name: "J", Phone: "1", Message: "m"})
	require.NoError(t, err)

	time.Sleep(25 * time.Millisecond)
	_, err = svc.Submit(Inquiry{Name: "J", Phone: "1", Message: "again"})
	require.NoError(t, err)

	// The first window would have expired by now; the second keeps it open.
	time.Sleep(25 * time.Millisecond)
	assert.True(t, svc.Sent())

	assert.Eventually(t, func() bool { return !svc.Sent() }, time.Second, 5*time.Millisecond)
}

func TestServiceStaleResetIsDiscarded(t *testing.T) {
	t.Parallel()

	// Resubmit right as the first window expires, so the first reset
	// callback races the second submission. The fresh window must survive
	// the stale reset.
	svc := NewService(60 * time.Millisecond)
	_, err := svc.Submit(Inquiry{Name: "J", Phone: "1", Message: "m"})
	require.NoError(t, err)

	time.Sleep(60 * time.Millisecond)
	_, err = svc.Submit(Inquiry{Name: "J", Phone: "1", Message: "again"})
	require.NoError(t, err)

	time.Sleep(15 * time.Millisecond)
	assert.True(t, svc.Sent())

	assert.Eventually(t, func() bool { return !svc.Sent() }, time.Second, 5*time.Millisecond)
}

func TestBuildInquiryIsDeterministic(t *testing.T) {
	t.Parallel()

	q := Inquiry{Name: "Jane", Phone: "123", Message: "Hi"}
	assert.Equal(t, BuildInquiry(q), BuildInquiry(q))
}
