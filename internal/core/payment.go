package core

// ProcessorStatus is a payment status as reported by MercadoPago.
// The set is open ended: MercadoPago may introduce values we do not
// know about, so unknown statuses must stay representable.
type ProcessorStatus string

const (
	ProcessorStatusApproved    ProcessorStatus = "approved"
	ProcessorStatusInProcess   ProcessorStatus = "in_process"
	ProcessorStatusPending     ProcessorStatus = "pending"
	ProcessorStatusRejected    ProcessorStatus = "rejected"
	ProcessorStatusCancelled   ProcessorStatus = "cancelled"
	ProcessorStatusRefunded    ProcessorStatus = "refunded"
	ProcessorStatusChargedBack ProcessorStatus = "charged_back"
)

// InternalStatus is a payment status in the vocabulary the order
// service understands.
type InternalStatus string

const (
	InternalStatusPaid     InternalStatus = "paid"
	InternalStatusPending  InternalStatus = "pending"
	InternalStatusFailed   InternalStatus = "failed"
	InternalStatusRefunded InternalStatus = "refunded"
)

var statusMap = map[ProcessorStatus]InternalStatus{
	ProcessorStatusApproved:    InternalStatusPaid,
	ProcessorStatusInProcess:   InternalStatusPending,
	ProcessorStatusPending:     InternalStatusPending,
	ProcessorStatusRejected:    InternalStatusFailed,
	ProcessorStatusCancelled:   InternalStatusFailed,
	ProcessorStatusRefunded:    InternalStatusRefunded,
	ProcessorStatusChargedBack: InternalStatusRefunded,
}

// TranslateStatus maps a MercadoPago status to the internal vocabulary.
// Unrecognized statuses translate to pending: leaving an order in limbo
// until a later event reconciles it is safer than marking it paid or
// failed on a status we do not understand.
func TranslateStatus(status ProcessorStatus) InternalStatus {
	if internal, ok := statusMap[status]; ok {
		return internal
	}
	return InternalStatusPending
}

// PaymentRecord is the authoritative payment snapshot fetched from
// MercadoPago. ExternalReference carries the order id in the downstream
// system; it is empty when the payment was created without one.
type PaymentRecord struct {
	ID                string
	Status            ProcessorStatus
	ExternalReference string
}
