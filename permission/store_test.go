package permission

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore_SwapReplacesSnapshot(t *testing.T) {
	open := mustBuild(t, NewBuilder().DefaultPolicy(Allow))
	closed := mustBuild(t, NewBuilder().DefaultPolicy(Deny))

	store := NewStore(open)
	sub := mustSubject(t, "orders.order.created.v1")

	assert.True(t, store.Allowed(sub, Publish))

	store.Swap(closed)
	assert.False(t, store.Allowed(sub, Publish))
	assert.Equal(t, Deny, store.Current().DefaultPolicy())
}

func TestStore_ConcurrentReadersAndSwaps(t *testing.T) {
	allowAll := mustBuild(t, NewBuilder().DefaultPolicy(Allow))
	denyAdmin := mustBuild(t, NewBuilder().
		DefaultPolicy(Allow).
		Deny("users.admin.>", Subscribe))

	store := NewStore(allowAll)
	person := mustSubject(t, "users.person.created.v1")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				// Either snapshot allows this subject; readers must
				// never see anything in between.
				assert.True(t, store.Allowed(person, Subscribe))
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 200; j++ {
			if j%2 == 0 {
				store.Swap(denyAdmin)
			} else {
				store.Swap(allowAll)
			}
		}
	}()

	wg.Wait()
}
