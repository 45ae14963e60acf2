package httpservers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/buildbarn/bb-capped-set/pkg/address"
	"github.com/buildbarn/bb-capped-set/pkg/cappedset"
	bb_http "github.com/buildbarn/bb-capped-set/pkg/http"
	"github.com/buildbarn/bb-capped-set/pkg/http/server"
	"github.com/buildbarn/bb-capped-set/pkg/util"
	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	otel_codes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Maximum size of a request body. Requests only carry a single
// magnitude.
const maximumRequestBodySizeBytes = 1 << 10

type entryMessage struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type valueMessage struct {
	Value string `json:"value"`
}

type capacityMessage struct {
	Capacity int `json:"capacity"`
	Size     int `json:"size"`
}

type errorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type valueRequest struct {
	Value json.Number `json:"value"`
}

type cappedSetServer struct {
	cappedSet   cappedset.CappedSet[address.Address]
	errorLogger util.ErrorLogger
}

// RegisterCappedSetServer registers HTTP handlers against a router that
// expose the operations of a CappedSet:
//
//	GET    /capacity       Capacity and number of entries.
//	GET    /entries/{key}  GetValue().
//	POST   /entries/{key}  Insert(), taking {"value": "..."}.
//	PUT    /entries/{key}  Update(), taking {"value": "..."}.
//	DELETE /entries/{key}  Remove().
//
// Magnitudes are encoded as decimal strings, so that they can be
// represented exactly. Failures are reported with an HTTP status code
// derived from the gRPC status code of the error. Errors that are not
// caused by the request are also passed to the error logger.
func RegisterCappedSetServer(router *mux.Router, cappedSet cappedset.CappedSet[address.Address], errorLogger util.ErrorLogger) {
	s := &cappedSetServer{
		cappedSet:   cappedSet,
		errorLogger: errorLogger,
	}
	for _, route := range []struct {
		path    string
		method  string
		name    string
		handler http.HandlerFunc
	}{
		{"/capacity", http.MethodGet, "CappedSetCapacity", s.handleCapacity},
		{"/entries/{key}", http.MethodGet, "CappedSetGetValue", s.handleGetValue},
		{"/entries/{key}", http.MethodPost, "CappedSetInsert", s.handleInsert},
		{"/entries/{key}", http.MethodPut, "CappedSetUpdate", s.handleUpdate},
		{"/entries/{key}", http.MethodDelete, "CappedSetRemove", s.handleRemove},
	} {
		router.Handle(
			route.path,
			otelhttp.NewHandler(server.NewMetricsHandler(route.handler, route.name), route.name),
		).Methods(route.method)
	}
}

func (s *cappedSetServer) writeJSON(w http.ResponseWriter, statusCode int, message any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(message); err != nil {
		s.errorLogger.Log(util.StatusWrap(err, "Failed to write response"))
	}
}

func (s *cappedSetServer) writeError(w http.ResponseWriter, r *http.Request, err error) {
	st := status.Convert(err)
	span := trace.SpanFromContext(r.Context())
	span.SetAttributes(attribute.String("grpc.code", st.Code().String()))
	span.SetStatus(otel_codes.Error, st.Message())

	statusCode := bb_http.StatusCodeFromGRPCCode(st.Code())
	if statusCode >= http.StatusInternalServerError {
		s.errorLogger.Log(err)
	}
	s.writeJSON(w, statusCode, errorMessage{
		Code:    st.Code().String(),
		Message: st.Message(),
	})
}

func (s *cappedSetServer) writeEntry(w http.ResponseWriter, entry cappedset.Entry[address.Address]) {
	s.writeJSON(w, http.StatusOK, entryMessage{
		Key:   entry.Key.String(),
		Value: strconv.FormatUint(entry.Value, 10),
	})
}

func getKey(r *http.Request) (address.Address, error) {
	key, err := address.Parse(mux.Vars(r)["key"])
	if err != nil {
		return address.Address{}, util.StatusWrap(err, "Invalid key")
	}
	trace.SpanFromContext(r.Context()).SetAttributes(attribute.String("capped_set.key", key.String()))
	return key, nil
}

func getKeyAndValue(w http.ResponseWriter, r *http.Request) (address.Address, uint64, error) {
	key, err := getKey(r)
	if err != nil {
		return address.Address{}, 0, err
	}

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maximumRequestBodySizeBytes))
	decoder.DisallowUnknownFields()
	var request valueRequest
	if err := decoder.Decode(&request); err != nil {
		return address.Address{}, 0, util.StatusWrapWithCode(err, codes.InvalidArgument, "Invalid request body")
	}
	value, err := strconv.ParseUint(string(request.Value), 10, 64)
	if err != nil {
		return address.Address{}, 0, status.Errorf(codes.InvalidArgument, "Invalid value %#v: must be a non-negative 64-bit integer", string(request.Value))
	}
	return key, value, nil
}

func (s *cappedSetServer) handleCapacity(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, capacityMessage{
		Capacity: s.cappedSet.Capacity(),
		Size:     s.cappedSet.Len(),
	})
}

func (s *cappedSetServer) handleGetValue(w http.ResponseWriter, r *http.Request) {
	key, err := getKey(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	value, err := s.cappedSet.GetValue(key)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, valueMessage{
		Value: strconv.FormatUint(value, 10),
	})
}

func (s *cappedSetServer) handleInsert(w http.ResponseWriter, r *http.Request) {
	key, value, err := getKeyAndValue(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	entry, err := s.cappedSet.Insert(key, value)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeEntry(w, entry)
}

func (s *cappedSetServer) handleUpdate(w http.ResponseWriter, r *http.Request) {
	key, value, err := getKeyAndValue(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	entry, err := s.cappedSet.Update(key, value)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeEntry(w, entry)
}

func (s *cappedSetServer) handleRemove(w http.ResponseWriter, r *http.Request) {
	key, err := getKey(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	entry, err := s.cappedSet.Remove(key)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeEntry(w, entry)
}
