package keeper

import (
	"encoding/binary"
	"encoding/json"
	"sync"

	"cosmossdk.io/log"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/sebastiangula/asaswap/pkg/store"
	"github.com/sebastiangula/asaswap/x/asaswap/types"
)

// defaultPoolCacheSize bounds the decoded-pool cache in front of the store.
const defaultPoolCacheSize = 256

// Keeper is the pool operation engine: it owns the persisted pool and
// account records and applies atomic batches against them. Execution is
// single-writer per batch; the surrounding ledger serializes submissions
// and the keeper's own mutex enforces the same locally.
type Keeper struct {
	mu sync.Mutex

	store   store.KVStore
	logger  log.Logger
	params  types.Params
	metrics *Metrics

	pools *lru.Cache[uint64, types.Pool]
}

// Option configures a Keeper.
type Option func(*Keeper)

// WithMetrics attaches prometheus metrics to the keeper.
func WithMetrics(m *Metrics) Option {
	return func(k *Keeper) { k.metrics = m }
}

// NewKeeper creates a keeper over the given store. params supplies the
// configuration of newly created pools.
func NewKeeper(kv store.KVStore, logger log.Logger, params types.Params, opts ...Option) (*Keeper, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	pools, err := lru.New[uint64, types.Pool](defaultPoolCacheSize)
	if err != nil {
		return nil, err
	}
	k := &Keeper{
		store:  kv,
		logger: logger.With("module", types.ModuleName),
		params: params,
		pools:  pools,
	}
	for _, opt := range opts {
		opt(k)
	}
	return k, nil
}

// Params returns the configuration applied to newly created pools.
func (k *Keeper) Params() types.Params { return k.params }

// Logger returns the keeper's logger.
func (k *Keeper) Logger() log.Logger { return k.logger }

// GetPool loads a pool record.
func (k *Keeper) GetPool(appID uint64) (types.Pool, error) {
	if pool, ok := k.pools.Get(appID); ok {
		return pool, nil
	}
	bz, err := k.store.Get(types.PoolKey(appID))
	if err != nil {
		if err == store.ErrNotFound {
			return types.Pool{}, types.ErrPoolNotFound.Wrapf("pool %d", appID)
		}
		return types.Pool{}, err
	}
	var pool types.Pool
	if err := json.Unmarshal(bz, &pool); err != nil {
		return types.Pool{}, err
	}
	k.pools.Add(appID, pool)
	return pool, nil
}

// SetPool persists a pool record.
func (k *Keeper) SetPool(pool types.Pool) error {
	bz, err := json.Marshal(pool)
	if err != nil {
		return err
	}
	if err := k.store.Set(types.PoolKey(pool.AppID), bz); err != nil {
		return err
	}
	k.pools.Add(pool.AppID, pool)
	return nil
}

// HasPool reports whether a pool record exists.
func (k *Keeper) HasPool(appID uint64) (bool, error) {
	if k.pools.Contains(appID) {
		return true, nil
	}
	return k.store.Has(types.PoolKey(appID))
}

// ListPools returns every persisted pool in app id order.
func (k *Keeper) ListPools() ([]types.Pool, error) {
	var pools []types.Pool
	err := k.store.Iterate(types.PoolKeyPrefix, func(_, value []byte) (bool, error) {
		var pool types.Pool
		if err := json.Unmarshal(value, &pool); err != nil {
			return false, err
		}
		pools = append(pools, pool)
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return pools, nil
}

// GetAccount loads a user account record.
func (k *Keeper) GetAccount(appID uint64, addr string) (types.UserAccount, error) {
	bz, err := k.store.Get(types.AccountKey(appID, addr))
	if err != nil {
		if err == store.ErrNotFound {
			return types.UserAccount{}, types.ErrNotRegistered.Wrapf("account %s in pool %d", addr, appID)
		}
		return types.UserAccount{}, err
	}
	var acct types.UserAccount
	if err := json.Unmarshal(bz, &acct); err != nil {
		return types.UserAccount{}, err
	}
	return acct, nil
}

// SetAccount persists a user account record.
func (k *Keeper) SetAccount(acct types.UserAccount) error {
	bz, err := json.Marshal(acct)
	if err != nil {
		return err
	}
	return k.store.Set(types.AccountKey(acct.AppID, acct.Addr), bz)
}

// HasAccount reports whether an account record exists.
func (k *Keeper) HasAccount(appID uint64, addr string) (bool, error) {
	return k.store.Has(types.AccountKey(appID, addr))
}

// DeleteAccount removes a user account record.
func (k *Keeper) DeleteAccount(appID uint64, addr string) error {
	return k.store.Delete(types.AccountKey(appID, addr))
}

// ListAccounts returns every account of one pool in address order.
func (k *Keeper) ListAccounts(appID uint64) ([]types.UserAccount, error) {
	var accts []types.UserAccount
	err := k.store.Iterate(types.AccountKeyPrefixForPool(appID), func(_, value []byte) (bool, error) {
		var acct types.UserAccount
		if err := json.Unmarshal(value, &acct); err != nil {
			return false, err
		}
		accts = append(accts, acct)
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return accts, nil
}

// nextAppID reads the next application id without advancing the counter.
// Creation persists the advanced counter together with the new pool, so a
// rejected creation batch leaves the counter untouched.
func (k *Keeper) nextAppID() (uint64, error) {
	bz, err := k.store.Get(types.AppCountKey)
	switch err {
	case nil:
		return binary.BigEndian.Uint64(bz), nil
	case store.ErrNotFound:
		return 1, nil
	default:
		return 0, err
	}
}

// setNextAppID moves the application id counter. Creation advances it past
// a freshly allocated id; genesis import skips past preexisting pool ids.
func (k *Keeper) setNextAppID(id uint64) error {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, id)
	return k.store.Set(types.AppCountKey, bz)
}
