package types

import "encoding/binary"

const (
	// ModuleName defines the module name
	ModuleName = "asaswap"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName
)

// Store key prefixes
var (
	AppCountKey      = []byte{0x00} // key for the application id counter
	PoolKeyPrefix    = []byte{0x01} // prefix for pool records
	AccountKeyPrefix = []byte{0x02} // prefix for user account records
)

// PoolKey returns the store key for a pool
func PoolKey(appID uint64) []byte {
	key := make([]byte, 0, len(PoolKeyPrefix)+8)
	key = append(key, PoolKeyPrefix...)
	return binary.BigEndian.AppendUint64(key, appID)
}

// AccountKey returns the store key for a user account within a pool
func AccountKey(appID uint64, addr string) []byte {
	key := make([]byte, 0, len(AccountKeyPrefix)+8+len(addr))
	key = append(key, AccountKeyPrefix...)
	key = binary.BigEndian.AppendUint64(key, appID)
	return append(key, []byte(addr)...)
}

// AccountKeyPrefixForPool returns the common prefix of all account keys
// belonging to one pool, for iteration.
func AccountKeyPrefixForPool(appID uint64) []byte {
	key := make([]byte, 0, len(AccountKeyPrefix)+8)
	key = append(key, AccountKeyPrefix...)
	return binary.BigEndian.AppendUint64(key, appID)
}
