package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	helper "github.com/lintang-b-s/klpartitioner/pkg/http/router/routerhelper"
	"go.uber.org/zap"
)

type partitionAPI struct {
	partitionService PartitionService
	log              *zap.Logger
	maxBodyBytes     int64
}

func New(partitionService PartitionService, log *zap.Logger, maxBodyBytes int64) *partitionAPI {
	return &partitionAPI{
		partitionService: partitionService,
		log:              log,
		maxBodyBytes:     maxBodyBytes,
	}
}

func (api *partitionAPI) Routes(group *helper.RouteGroup) {
	group.POST("/partition", api.partition)
}

// partition
//
//	@Summary		kernighan-lin bisection of a netlist
//	@Description	splits the netlist in two balanced halves minimizing the number of cut edges
//	@Tags			partition
//	@Accept			json
//	@Produce		json
//	@Router			/partition [post]
//	@Param			body	body		partitionRequest	true	"netlist"
//	@Success		200		{object}	partitionResponse
//	@Failure		400		{object}	errorResponse
//	@Failure		500		{object}	errorResponse
func (api *partitionAPI) partition(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request partitionRequest
		err     error
	)

	r.Body = http.MaxBytesReader(w, r.Body, api.maxBodyBytes)
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := r.Body.Close(); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return
	}

	result, components, err := api.partitionService.Partition(r.Context(), request.Vertices, request.edgePairs())
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewPartitionResponse(result, components)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
