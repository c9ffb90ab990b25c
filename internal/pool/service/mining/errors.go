package mining

import "errors"

var (
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrInvalidAddress   = errors.New("invalid wallet address")
	ErrInvalidNonce     = errors.New("invalid nonce")
	ErrDuplicateShare   = errors.New("duplicate share")
	ErrInvalidBlock     = errors.New("invalid block number")
	ErrShareRejected    = errors.New("share rejected")
	ErrNoCandidate      = errors.New("no block available for mining")
	ErrRateLimited      = errors.New("too many failed requests")
)
