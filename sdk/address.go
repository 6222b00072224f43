package sdk

import "strings"

type AddressDomain string

const (
	AddressDomainUser     AddressDomain = "user"
	AddressDomainRegistry AddressDomain = "registry"
	AddressDomainSystem   AddressDomain = "system"
)

type Address string

// String returns the literal representation (like user:alice) of the address.
// Example payload: sdk.Address("user:alice").String()
func (a Address) String() string {
	return string(a)
}

// Domain quickly checks the prefix to guess if we deal with user/registry/system domain.
// Example payload: sdk.Address("registry:taskmesh").Domain()
func (a Address) Domain() AddressDomain {
	if strings.HasPrefix(a.String(), "system:") {
		return AddressDomainSystem
	}
	if strings.HasPrefix(a.String(), "registry:") {
		return AddressDomainRegistry
	}
	return AddressDomainUser
}

// IsValid is a light sanity check: an address needs a domain prefix and a name part.
// Example payload: sdk.Address("user:alice").IsValid()
func (a Address) IsValid() bool {
	s := a.String()
	i := strings.IndexByte(s, ':')
	return i > 0 && i < len(s)-1
}
