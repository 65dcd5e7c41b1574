package queries

import (
	"context"
	"sync"

	"officeorder/internal/core/ports"
)

// roleFetch is one in-flight CC role lookup. Waiters block on done and read
// roles/err afterwards.
type roleFetch struct {
	done  chan struct{}
	roles []CCRoleResponse
	err   error
}

// GetCCRolesQueryHandler fetches CC role options through the registry
// gateway with per-employee memoization.
//
// Two concurrent requests for the same employee are coalesced: the second
// waits for the first fetch instead of issuing its own, so the cached list
// is never written by two interleaved fetches. Failed fetches are not
// cached; the next request retries.
type GetCCRolesQueryHandler struct {
	gateway ports.RegistryGateway

	mu       sync.Mutex
	cache    map[string][]CCRoleResponse
	inflight map[string]*roleFetch
}

// NewGetCCRolesQueryHandler creates a handler for CC role queries.
func NewGetCCRolesQueryHandler(gateway ports.RegistryGateway) *GetCCRolesQueryHandler {
	return &GetCCRolesQueryHandler{
		gateway:  gateway,
		cache:    make(map[string][]CCRoleResponse),
		inflight: make(map[string]*roleFetch),
	}
}

// Handle returns the employee's CC role options, from cache when available.
func (h *GetCCRolesQueryHandler) Handle(ctx context.Context, query GetCCRolesQuery) ([]CCRoleResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	employeeID := query.EmployeeID()

	h.mu.Lock()
	if roles, ok := h.cache[employeeID]; ok {
		h.mu.Unlock()
		return roles, nil
	}
	if fetch, ok := h.inflight[employeeID]; ok {
		h.mu.Unlock()
		select {
		case <-fetch.done:
			return fetch.roles, fetch.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	fetch := &roleFetch{done: make(chan struct{})}
	h.inflight[employeeID] = fetch
	h.mu.Unlock()

	raw, err := h.gateway.FetchCCRoles(ctx, query.SessionCtx(), employeeID)
	if err == nil {
		fetch.roles = make([]CCRoleResponse, 0, len(raw))
		for _, role := range raw {
			fetch.roles = append(fetch.roles, CCRoleResponse{Code: role.Code, Name: role.Name})
		}
	}
	fetch.err = err

	h.mu.Lock()
	if err == nil {
		h.cache[employeeID] = fetch.roles
	}
	delete(h.inflight, employeeID)
	h.mu.Unlock()
	close(fetch.done)

	return fetch.roles, fetch.err
}
