package mem_test

import (
	"testing"
	"time"

	mem "clubcentral/pkg/memcache"
)

func TestRevokedTokens(t *testing.T) {
	store := mem.NewRevokedTokens()

	if store.IsRevoked("tok") {
		t.Error("fresh store should not know the token")
	}

	store.Revoke("tok", time.Hour)
	if !store.IsRevoked("tok") {
		t.Error("token should be revoked")
	}
	if store.IsRevoked("other") {
		t.Error("unrelated token reported revoked")
	}
}

func TestRevokedTokens_Expiry(t *testing.T) {
	store := mem.NewRevokedTokens()

	store.Revoke("stale", -time.Second)
	if store.IsRevoked("stale") {
		t.Error("entry past its ttl should not count as revoked")
	}
}
