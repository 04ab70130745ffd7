package models

// Operation identifies one of the upstream cycle-count operations the relay
// forwards. Its string value is the inbound route name, e.g. /api/<value>.
type Operation string

const (
	OperationInitiateCount                 Operation = "initiateCount"
	OperationValidateItemAndGetItemDetails Operation = "validateItemAndGetItemDetails"
	OperationAcceptQuantity                Operation = "acceptQuantity"
	OperationPersistCountDetails           Operation = "persistCountDetails"
	OperationGetInventory                  Operation = "getInventory"

	// OperationAuth is not forwarded through the API host but is tracked
	// alongside the others in logs and metrics.
	OperationAuth Operation = "auth"
)

// ForwardOperations lists the operations that share the POST relay flow.
var ForwardOperations = []Operation{
	OperationInitiateCount,
	OperationValidateItemAndGetItemDetails,
	OperationAcceptQuantity,
	OperationPersistCountDetails,
}

// String implements fmt.Stringer.
func (o Operation) String() string {
	return string(o)
}
