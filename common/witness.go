package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

const (
	// ErrNotAuthorized appears when the method must be witnessed by a
	// specific account or invoked by a specific contract but was not.
	ErrNotAuthorized = "not authorized"
)

// CheckWitness checks witness of the passed account. It panics with
// ErrNotAuthorized message on fail. Contracts pass the check when they are
// the direct caller of the method.
func CheckWitness(account interop.Hash160) {
	if len(account) != interop.Hash160Len || !runtime.CheckWitness(account) {
		panic(ErrNotAuthorized)
	}
}

// CheckCaller checks that the method is invoked by the contract with the
// given hash. It panics with ErrNotAuthorized message on fail.
func CheckCaller(contractHash interop.Hash160) {
	if !runtime.GetCallingScriptHash().Equals(contractHash) {
		panic(ErrNotAuthorized)
	}
}
