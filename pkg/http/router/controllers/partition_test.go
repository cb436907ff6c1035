package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	helper "github.com/lintang-b-s/klpartitioner/pkg/http/router/routerhelper"
	"github.com/lintang-b-s/klpartitioner/pkg/partitioner"
	"github.com/lintang-b-s/klpartitioner/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePartitionService struct {
	gotVertices []int
	gotEdges    [][2]int
	result      *partitioner.PartitionResult
	components  int
	err         error
}

func (f *fakePartitionService) Partition(ctx context.Context, vertexIds []int, edges [][2]int) (*partitioner.PartitionResult, int, error) {
	f.gotVertices = vertexIds
	f.gotEdges = edges
	return f.result, f.components, f.err
}

func newTestRouter(service PartitionService) *httprouter.Router {
	router := httprouter.New()
	New(service, zap.NewNop(), 1<<20).Routes(helper.NewRouteGroup(router, "/api"))
	return router
}

func TestPartitionHandler(t *testing.T) {
	okResult := &partitioner.PartitionResult{
		CutSize:        1,
		InitialCutSize: 5,
		GroupA:         []int{1, 2, 3},
		GroupB:         []int{4, 5, 6},
		Iterations:     2,
		TotalGain:      4,
		Swaps:          []partitioner.Swap{{VertexA: 4, VertexB: 3, Gain: 4}},
	}

	testCases := []struct {
		name         string
		body         string
		service      *fakePartitionService
		wantStatus   int
		wantVertices []int
		wantEdges    [][2]int
	}{
		{
			name:         "ok",
			body:         `{"vertices":[1,4,2,5,3,6],"edges":[[1,2],[2,3],[1,3],[4,5],[5,6],[4,6],[3,4]]}`,
			service:      &fakePartitionService{result: okResult, components: 1},
			wantStatus:   http.StatusOK,
			wantVertices: []int{1, 4, 2, 5, 3, 6},
			wantEdges:    [][2]int{{1, 2}, {2, 3}, {1, 3}, {4, 5}, {5, 6}, {4, 6}, {3, 4}},
		},
		{
			name:       "malformed json",
			body:       `{"edges":[[1,2]`,
			service:    &fakePartitionService{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing edges",
			body:       `{"vertices":[1,2]}`,
			service:    &fakePartitionService{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "edge with three endpoints",
			body:       `{"edges":[[1,2,3]]}`,
			service:    &fakePartitionService{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "repeated vertices",
			body:       `{"vertices":[1,1],"edges":[[1,2]]}`,
			service:    &fakePartitionService{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad param from service",
			body:       `{"edges":[[1,2]]}`,
			service:    &fakePartitionService{err: util.WrapErrorf(nil, util.ErrBadParamInput, "invalid netlist")},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "canceled",
			body:       `{"edges":[[1,2]]}`,
			service:    &fakePartitionService{err: util.WrapErrorf(context.Canceled, util.ErrCanceled, "partitioning canceled")},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "unexpected error",
			body:       `{"edges":[[1,2]]}`,
			service:    &fakePartitionService{err: assert.AnError},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/partition", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			newTestRouter(tt.service).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			if tt.wantStatus != http.StatusOK {
				var resp errorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, http.StatusText(tt.wantStatus), resp.Error.Code)
				assert.NotEmpty(t, resp.Error.Message)
				return
			}

			assert.Equal(t, tt.wantVertices, tt.service.gotVertices)
			assert.Equal(t, tt.wantEdges, tt.service.gotEdges)

			var resp struct {
				Data partitionResponse `json:"data"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, 1, resp.Data.CutSize)
			assert.Equal(t, 5, resp.Data.InitialCutSize)
			assert.Equal(t, []int{1, 2, 3}, resp.Data.GroupA)
			assert.Equal(t, []int{4, 5, 6}, resp.Data.GroupB)
			assert.Equal(t, 2, resp.Data.Iterations)
			assert.Equal(t, 4, resp.Data.TotalGain)
			assert.Equal(t, []swapResponse{{FromA: 4, FromB: 3, Gain: 4}}, resp.Data.Swaps)
			assert.Equal(t, 1, resp.Data.Components)
		})
	}
}

func TestPartitionHandlerBodyTooLarge(t *testing.T) {
	router := httprouter.New()
	New(&fakePartitionService{}, zap.NewNop(), 16).Routes(helper.NewRouteGroup(router, "/api"))

	req := httptest.NewRequest(http.MethodPost, "/api/partition",
		strings.NewReader(`{"edges":[[1,2],[2,3],[3,4],[4,5]]}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
