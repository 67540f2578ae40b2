package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOwnership_SetsAreDisjoint(t *testing.T) {
	hook := OwnedTypes(OwnerHookDispatcher)
	git := OwnedTypes(OwnerGitHooks)

	for _, ht := range hook {
		assert.NotContains(t, git, ht, "event type %s owned by both emitters", ht)
	}
}

func TestOwnership_EveryKnownTypeHasExactlyOneOwner(t *testing.T) {
	for _, et := range KnownEventTypes() {
		owners := 0
		for _, owner := range Owners() {
			for _, owned := range OwnedTypes(owner) {
				if owned == et {
					owners++
				}
			}
		}
		assert.Equal(t, 1, owners, "event type %s", et)
	}
}

func TestOwnerOf(t *testing.T) {
	tests := []struct {
		eventType EventType
		wantOwner Owner
		wantOK    bool
	}{
		{EventToolExecutionCompleted, OwnerHookDispatcher, true},
		{EventSessionStarted, OwnerHookDispatcher, true},
		{EventGitCommit, OwnerGitHooks, true},
		{EventGitCheckout, OwnerGitHooks, true},
		{EventType("git_fetch"), "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.eventType), func(t *testing.T) {
			owner, ok := OwnerOf(tt.eventType)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantOwner, owner)
		})
	}
}

func TestOwnedTypes_ReturnsCopy(t *testing.T) {
	types := OwnedTypes(OwnerGitHooks)
	types[0] = "tampered"

	assert.NotContains(t, OwnedTypes(OwnerGitHooks), EventType("tampered"))
	assert.Nil(t, OwnedTypes(Owner("nobody")))
}
