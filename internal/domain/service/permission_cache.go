package service

import "backoffice/internal/domain/entity"

// PermissionCache memoises resolved permission sets per principal.
//
// A miss reports the entry's generation. A resolver passes it back to Set, which
// drops the write when the principal was invalidated (or the cache purged) while
// the set was being read from storage.
type PermissionCache interface {
	Get(principalID int64) (entity.Permissions, uint64, bool)
	Set(principalID int64, generation uint64, permissions entity.Permissions) bool
	Invalidate(principalIDs ...int64)
	Purge()
}
