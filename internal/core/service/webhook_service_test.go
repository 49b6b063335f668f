package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mpbridge/mp-relay/internal/core"
	"github.com/mpbridge/mp-relay/internal/core/service"
	"github.com/mpbridge/mp-relay/internal/port/output"
)

type fakeLookup struct {
	record *core.PaymentRecord
	err    error
	panics bool
	calls  []string
}

func (f *fakeLookup) GetPayment(ctx context.Context, paymentID string) (*core.PaymentRecord, error) {
	f.calls = append(f.calls, paymentID)
	if f.panics {
		panic("lookup exploded")
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.record, nil
}

type fakeNotifier struct {
	result        output.NotifyResult
	notifications []core.OrderNotification
}

func (f *fakeNotifier) Notify(ctx context.Context, n core.OrderNotification) output.NotifyResult {
	f.notifications = append(f.notifications, n)
	return f.result
}

func TestProcessEventIgnoresNonPaymentEvents(t *testing.T) {
	lookup := &fakeLookup{}
	notifier := &fakeNotifier{}
	svc := service.NewWebhookService(lookup, notifier)

	ack := svc.ProcessEvent(context.Background(), core.WebhookEvent{Type: "merchant_order"})

	require.True(t, ack.OK)
	require.True(t, ack.Ignored)
	require.Empty(t, lookup.calls)
	require.Empty(t, notifier.notifications)
}

func TestProcessEventIgnoresMissingPaymentID(t *testing.T) {
	lookup := &fakeLookup{}
	notifier := &fakeNotifier{}
	svc := service.NewWebhookService(lookup, notifier)

	ack := svc.ProcessEvent(context.Background(), core.WebhookEvent{Type: "payment"})

	require.True(t, ack.OK)
	require.True(t, ack.Ignored)
	require.Empty(t, lookup.calls)
	require.Empty(t, notifier.notifications)
}

func TestProcessEventNotifiesOrderService(t *testing.T) {
	lookup := &fakeLookup{record: &core.PaymentRecord{
		ID:                "123",
		Status:            core.ProcessorStatusApproved,
		ExternalReference: "ORDER-9",
	}}
	notifier := &fakeNotifier{result: output.NotifyResult{Delivered: true, StatusCode: 200}}
	svc := service.NewWebhookService(lookup, notifier)

	ack := svc.ProcessEvent(context.Background(), core.WebhookEvent{Type: "payment", PaymentID: "123"})

	require.Equal(t, []string{"123"}, lookup.calls)
	require.Len(t, notifier.notifications, 1)

	sent := notifier.notifications[0]
	require.Equal(t, "ORDER-9", sent.OrderReference)
	require.Equal(t, core.InternalStatusPaid, sent.PaymentStatus)
	require.Equal(t, "123", sent.PaymentID)
	require.Equal(t, core.ProcessorStatusApproved, sent.MercadopagoStatus)

	require.True(t, ack.OK)
	require.False(t, ack.Ignored)
	require.Empty(t, ack.Error)
}

func TestProcessEventSkipsNotifyWithoutExternalReference(t *testing.T) {
	lookup := &fakeLookup{record: &core.PaymentRecord{
		ID:     "123",
		Status: core.ProcessorStatusApproved,
	}}
	notifier := &fakeNotifier{}
	svc := service.NewWebhookService(lookup, notifier)

	ack := svc.ProcessEvent(context.Background(), core.WebhookEvent{Type: "payment", PaymentID: "123"})

	require.True(t, ack.OK)
	require.Empty(t, ack.Error)
	require.Empty(t, notifier.notifications)
}

func TestProcessEventAcksLookupFailure(t *testing.T) {
	lookup := &fakeLookup{err: &core.LookupError{PaymentID: "999", Err: context.DeadlineExceeded}}
	notifier := &fakeNotifier{}
	svc := service.NewWebhookService(lookup, notifier)

	ack := svc.ProcessEvent(context.Background(), core.WebhookEvent{Type: "payment", PaymentID: "999"})

	require.True(t, ack.OK)
	require.Contains(t, ack.Error, "999")
	require.Empty(t, notifier.notifications)
}

func TestProcessEventAcksWhenNotifyFails(t *testing.T) {
	lookup := &fakeLookup{record: &core.PaymentRecord{
		ID:                "123",
		Status:            core.ProcessorStatusRejected,
		ExternalReference: "ORDER-1",
	}}
	notifier := &fakeNotifier{result: output.NotifyResult{Reason: "order service returned 503"}}
	svc := service.NewWebhookService(lookup, notifier)

	ack := svc.ProcessEvent(context.Background(), core.WebhookEvent{Type: "payment", PaymentID: "123"})

	// The notify outcome is observed but never surfaces in the ack.
	require.True(t, ack.OK)
	require.Empty(t, ack.Error)
	require.Len(t, notifier.notifications, 1)
}

func TestProcessEventContainsPanics(t *testing.T) {
	lookup := &fakeLookup{panics: true}
	notifier := &fakeNotifier{}
	svc := service.NewWebhookService(lookup, notifier)

	ack := svc.ProcessEvent(context.Background(), core.WebhookEvent{Type: "payment", PaymentID: "123"})

	require.True(t, ack.OK)
	require.Contains(t, ack.Error, "internal error")
	require.Empty(t, notifier.notifications)
}

func TestProcessEventDuplicateDeliveryRunsTwice(t *testing.T) {
	// No dedup anywhere: the same event delivered twice does two
	// lookups and two notifications.
	lookup := &fakeLookup{record: &core.PaymentRecord{
		ID:                "123",
		Status:            core.ProcessorStatusApproved,
		ExternalReference: "ORDER-9",
	}}
	notifier := &fakeNotifier{result: output.NotifyResult{Delivered: true, StatusCode: 200}}
	svc := service.NewWebhookService(lookup, notifier)

	event := core.WebhookEvent{Type: "payment", PaymentID: "123"}
	svc.ProcessEvent(context.Background(), event)
	svc.ProcessEvent(context.Background(), event)

	require.Len(t, lookup.calls, 2)
	require.Len(t, notifier.notifications, 2)
}
