package models

import "strings"

// Company identifies one of the businesses covered by the financial dataset.
type Company string

const (
	CompanyMicrosoft Company = "Microsoft"
	CompanyTesla     Company = "Tesla"
	CompanyApple     Company = "Apple"
)

// Companies returns every supported company in display order.
func Companies() []Company {
	return []Company{CompanyMicrosoft, CompanyTesla, CompanyApple}
}

// ParseCompany resolves free-form text to a Company, case-insensitively.
func ParseCompany(s string) (Company, bool) {
	for _, c := range Companies() {
		if strings.EqualFold(strings.TrimSpace(s), string(c)) {
			return c, true
		}
	}
	return "", false
}
