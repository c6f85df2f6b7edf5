package objects

import (
	"context"
	"sync"

	"github.com/hashicorp/go-multierror"

	"github.com/overseer-monitoring/overseer-go/pkg/object"
)

// Snapshot holds one complete fetch of every standalone entity collection.
type Snapshot struct {
	Hosts         *object.Map[*Host]
	HostGroups    *object.Map[*HostGroup]
	ServiceChecks *object.Map[*ServiceCheck]
	Contacts      *object.Map[*Contact]
	Hashtags      *object.Map[*Hashtag]
	BSMComponents *object.Map[*BSMComponent]
}

// FetchSnapshot retrieves every collection concurrently, one fetch-all per
// entity type. The fetches need no coordination: each owns its accumulator
// and its page sequencing. Failures are aggregated; if any fetch fails the
// snapshot is discarded rather than returned partially filled.
func FetchSnapshot(ctx context.Context, c object.Requester) (*Snapshot, error) {
	var (
		snap   Snapshot
		mu     sync.Mutex
		wg     sync.WaitGroup
		result *multierror.Error
	)

	fail := func(err error) {
		mu.Lock()
		result = multierror.Append(result, err)
		mu.Unlock()
	}

	wg.Add(6)
	go func() {
		defer wg.Done()
		m, err := object.FetchAll[Host](ctx, c, nil)
		if err != nil {
			fail(err)
			return
		}
		snap.Hosts = m
	}()
	go func() {
		defer wg.Done()
		m, err := object.FetchAll[HostGroup](ctx, c, nil)
		if err != nil {
			fail(err)
			return
		}
		snap.HostGroups = m
	}()
	go func() {
		defer wg.Done()
		m, err := object.FetchAll[ServiceCheck](ctx, c, nil)
		if err != nil {
			fail(err)
			return
		}
		snap.ServiceChecks = m
	}()
	go func() {
		defer wg.Done()
		m, err := object.FetchAll[Contact](ctx, c, nil)
		if err != nil {
			fail(err)
			return
		}
		snap.Contacts = m
	}()
	go func() {
		defer wg.Done()
		m, err := object.FetchAll[Hashtag](ctx, c, nil)
		if err != nil {
			fail(err)
			return
		}
		snap.Hashtags = m
	}()
	go func() {
		defer wg.Done()
		m, err := object.FetchAll[BSMComponent](ctx, c, nil)
		if err != nil {
			fail(err)
			return
		}
		snap.BSMComponents = m
	}()
	wg.Wait()

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return &snap, nil
}
