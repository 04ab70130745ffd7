package adapter

import "github.com/MKhiriev/cycle-count-relay/models"

const (
	tokenPath = "/oauth/token"

	countBasePath = "/inventory-management/api/inventory-management/count"
	inventoryPath = "/dcinventory/api/dcinventory/inventory"

	// locationQueryParam carries the location filter of an inventory lookup.
	// The upstream expects the value wrapped in double quotes.
	locationQueryParam = "LocationId"
)

var forwardPaths = map[models.Operation]string{
	models.OperationInitiateCount:                 countBasePath + "/initiateCount",
	models.OperationValidateItemAndGetItemDetails: countBasePath + "/validateItemAndGetItemDetails",
	models.OperationAcceptQuantity:                countBasePath + "/acceptQuantity",
	models.OperationPersistCountDetails:           countBasePath + "/persistCountDetails",
}

// ForwardPath returns the upstream path of a forwarding operation.
func ForwardPath(op models.Operation) (string, bool) {
	p, ok := forwardPaths[op]
	return p, ok
}
