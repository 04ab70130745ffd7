// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"strings"
)

const (
	usernamePrefix = "sdtadmin@"
	facilitySuffix = "-DM1"
)

// Header names expected by the upstream API.
const (
	HeaderAuthorization        = "Authorization"
	HeaderContentType          = "Content-Type"
	HeaderFacilityID           = "FacilityId"
	HeaderSelectedOrganization = "selectedOrganization"
	HeaderSelectedLocation     = "selectedLocation"
)

// FacilityID derives the facility identifier of an organization,
// e.g. "acme" -> "ACME-DM1".
func FacilityID(org string) string {
	return strings.ToUpper(org) + facilitySuffix
}

// Username derives the service login of an organization,
// e.g. "ACME" -> "sdtadmin@acme".
func Username(org string) string {
	return usernamePrefix + strings.ToLower(org)
}

// BuildHeaders returns the header set attached to every forwarded request.
func BuildHeaders(org, token string) map[string]string {
	facilityID := FacilityID(org)

	return map[string]string{
		HeaderAuthorization:        "Bearer " + token,
		HeaderContentType:          "application/json",
		HeaderFacilityID:           facilityID,
		HeaderSelectedOrganization: strings.ToUpper(org),
		HeaderSelectedLocation:     facilityID,
	}
}
