package handler

import (
	"net/http"

	"github.com/viant/flowstate/service/engine"
)

// StatusOf maps an engine failure kind to an HTTP status code so each
// error condition stays distinguishable on the wire.
func StatusOf(err error) int {
	switch engine.KindOf(err) {
	case engine.KindInvalidInitialState, engine.KindUnknownStateReference:
		return http.StatusBadRequest
	case engine.KindDuplicateDefinition:
		return http.StatusConflict
	case engine.KindDefinitionNotFound, engine.KindInstanceNotFound, engine.KindActionNotFound:
		return http.StatusNotFound
	case engine.KindInstanceAlreadyFinal, engine.KindActionDisabled, engine.KindActionNotApplicable:
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
