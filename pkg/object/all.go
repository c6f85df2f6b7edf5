package object

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/overseer-monitoring/overseer-go/pkg/wire"
)

// PageSummary is the per-page bookkeeping object the API attaches to list
// responses. It drives loop termination and the consistency checks and is not
// retained once a fetch-all completes.
type PageSummary struct {
	TotalRows  wire.Uint `json:"totalrows"`
	TotalPages wire.Uint `json:"totalpages"`
}

// FetchAll retrieves the entire remote collection of an entity type as one
// Map, walking pages sequentially. Caller-supplied query params are carried on
// every request; the page parameter is merged in from page 2 onward (page 1 is
// requested without one).
//
// Consistency is checked at two points. Every page's declared totalrows must
// agree with the first page's, and after the walk the accumulated map's length
// must equal that total. Either deviation aborts with a RowCountMismatchError
// and no accumulated data, since the caller could not tell a truncated
// collection from a complete one. The second check also catches silent
// duplicates or losses across pages that the per-page check cannot see.
func FetchAll[T any, P interface {
	Persistent
	*T
}](ctx context.Context, c Requester, params url.Values) (*Map[P], error) {
	path := P(new(T)).ConfigPath()
	if path == "" {
		return nil, &Error{Op: "FetchAll", Err: ErrNoConfigPath}
	}

	acc := NewMap[P]()
	var totalRows uint64
	var totalPages uint64

	for page := uint64(1); ; page++ {
		pageParams := clonedParams(params)
		if page > 1 {
			pageParams.Set("page", strconv.FormatUint(page, 10))
		}

		raw, err := c.Get(ctx, path, pageParams)
		if err != nil {
			return nil, err
		}

		var env listEnvelope
		if err := json.Unmarshal(raw, &env); err != nil {
			return nil, &Error{Op: "FetchAll", Err: err, Msg: "decoding list envelope"}
		}
		if env.Summary == nil {
			return nil, &Error{Op: "FetchAll", Err: ErrFieldNotFound, Msg: "summary"}
		}
		if env.List == nil {
			return nil, &Error{Op: "FetchAll", Err: ErrFieldNotFound, Msg: "list"}
		}

		rows := env.Summary.TotalRows.Uint64()
		if page == 1 {
			totalRows = rows
			totalPages = env.Summary.TotalPages.Uint64()
		} else if rows != totalRows {
			// The collection changed under us; partial results cannot be
			// trusted.
			return nil, &RowCountMismatchError{Expected: totalRows, Got: rows}
		}

		var shape []json.RawMessage
		if err := json.Unmarshal(env.List, &shape); err != nil {
			return nil, &Error{Op: "FetchAll", Err: ErrNotAnArray, Msg: "list"}
		}

		pageMap := NewMap[P]()
		if err := pageMap.UnmarshalJSON(env.List); err != nil {
			return nil, err
		}
		acc.Extend(pageMap)

		if page >= totalPages {
			break
		}
	}

	if got := uint64(acc.Len()); got != totalRows {
		return nil, &RowCountMismatchError{Expected: totalRows, Got: got}
	}
	return acc, nil
}

// clonedParams copies caller params so the pager's page parameter never leaks
// back into the caller's values.
func clonedParams(params url.Values) url.Values {
	out := url.Values{}
	for k, vs := range params {
		for _, v := range vs {
			out.Add(k, v)
		}
	}
	return out
}
