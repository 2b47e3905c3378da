package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"example.com/activities/internal/domain"
)

// newTestMux builds an isolated service over a fresh seed directory so tests
// never share roster state.
func newTestMux() *http.ServeMux {
	service := domain.NewService(domain.DefaultDirectory(), nil, zap.NewNop())
	mux := http.NewServeMux()
	NewHandler(service).RegisterRoutes(mux)
	return mux
}

func do(t *testing.T, mux *http.ServeMux, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func listActivities(t *testing.T, mux *http.ServeMux) map[string]ActivityView {
	t.Helper()
	rr := do(t, mux, http.MethodGet, "/activities")
	require.Equal(t, http.StatusOK, rr.Code)
	var data map[string]ActivityView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &data))
	return data
}

func TestRootRedirectsToStatic(t *testing.T) {
	rr := do(t, newTestMux(), http.MethodGet, "/")
	require.Equal(t, http.StatusTemporaryRedirect, rr.Code)
	require.Equal(t, "/static/index.html", rr.Header().Get("Location"))
}

func TestUnknownPathReturns404(t *testing.T) {
	rr := do(t, newTestMux(), http.MethodGet, "/nope")
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHealthz(t *testing.T) {
	rr := do(t, newTestMux(), http.MethodGet, "/healthz")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "ok", rr.Body.String())
}

func TestGetActivitiesReturnsFullCatalog(t *testing.T) {
	data := listActivities(t, newTestMux())

	require.Len(t, data, 9)
	require.Contains(t, data, "Basketball Team")
	require.Contains(t, data, "Tennis Club")
	require.Contains(t, data, "Programming Class")

	for name, act := range data {
		require.NotEmpty(t, act.Description, "activity %s", name)
		require.NotEmpty(t, act.Schedule, "activity %s", name)
		require.Positive(t, act.MaxParticipants, "activity %s", name)
		require.NotNil(t, act.Participants, "activity %s", name)
	}
}

func TestGetActivitiesPreservesDirectoryOrder(t *testing.T) {
	rr := do(t, newTestMux(), http.MethodGet, "/activities")
	require.Equal(t, http.StatusOK, rr.Code)

	// Walk the raw token stream; decoding into a map would lose key order.
	dec := json.NewDecoder(strings.NewReader(rr.Body.String()))
	tok, err := dec.Token()
	require.NoError(t, err)
	require.Equal(t, json.Delim('{'), tok)

	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		require.NoError(t, err)
		keys = append(keys, tok.(string))

		var skip json.RawMessage
		require.NoError(t, dec.Decode(&skip))
	}

	require.Equal(t, []string{
		"Basketball Team",
		"Tennis Club",
		"Art Club",
		"Drama Club",
		"Debate Team",
		"Science Club",
		"Chess Club",
		"Programming Class",
		"Gym Class",
	}, keys)
}

func TestSignupSuccess(t *testing.T) {
	mux := newTestMux()

	rr := do(t, mux, http.MethodPost, "/activities/Basketball%20Team/signup?email=newstudent@mergington.edu")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, decodeBody(t, rr)["message"], "newstudent@mergington.edu")

	data := listActivities(t, mux)
	require.Contains(t, data["Basketball Team"].Participants, "newstudent@mergington.edu")
}

func TestSignupDuplicateParticipant(t *testing.T) {
	mux := newTestMux()

	rr := do(t, mux, http.MethodPost, "/activities/Basketball%20Team/signup?email=newstudent@mergington.edu")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = do(t, mux, http.MethodPost, "/activities/Basketball%20Team/signup?email=newstudent@mergington.edu")
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Contains(t, strings.ToLower(decodeBody(t, rr)["detail"]), "already signed up")
}

func TestSignupNonexistentActivity(t *testing.T) {
	rr := do(t, newTestMux(), http.MethodPost, "/activities/Nonexistent%20Club/signup?email=test@mergington.edu")
	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Contains(t, strings.ToLower(decodeBody(t, rr)["detail"]), "not found")
}

func TestSignupMultipleStudents(t *testing.T) {
	mux := newTestMux()

	do(t, mux, http.MethodPost, "/activities/Art%20Club/signup?email=student1@mergington.edu")
	do(t, mux, http.MethodPost, "/activities/Art%20Club/signup?email=student2@mergington.edu")

	participants := listActivities(t, mux)["Art Club"].Participants
	require.Contains(t, participants, "student1@mergington.edu")
	require.Contains(t, participants, "student2@mergington.edu")
	require.Len(t, participants, 3) // seed participant plus two new
}

func TestSignupMissingEmail(t *testing.T) {
	rr := do(t, newTestMux(), http.MethodPost, "/activities/Art%20Club/signup")
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSignupWrongMethod(t *testing.T) {
	rr := do(t, newTestMux(), http.MethodGet, "/activities/Art%20Club/signup?email=x@mergington.edu")
	require.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestUnregisterSuccess(t *testing.T) {
	mux := newTestMux()

	do(t, mux, http.MethodPost, "/activities/Basketball%20Team/signup?email=teststudent@mergington.edu")

	rr := do(t, mux, http.MethodDelete, "/activities/Basketball%20Team/unregister?email=teststudent@mergington.edu")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, decodeBody(t, rr)["message"], "Unregistered")

	data := listActivities(t, mux)
	require.NotContains(t, data["Basketball Team"].Participants, "teststudent@mergington.edu")
}

func TestUnregisterSeedParticipant(t *testing.T) {
	mux := newTestMux()

	rr := do(t, mux, http.MethodDelete, "/activities/Basketball%20Team/unregister?email=james@mergington.edu")
	require.Equal(t, http.StatusOK, rr.Code)

	data := listActivities(t, mux)
	require.NotContains(t, data["Basketball Team"].Participants, "james@mergington.edu")
}

func TestUnregisterNonParticipant(t *testing.T) {
	rr := do(t, newTestMux(), http.MethodDelete, "/activities/Basketball%20Team/unregister?email=notregistered@mergington.edu")
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Contains(t, strings.ToLower(decodeBody(t, rr)["detail"]), "not registered")
}

func TestUnregisterNonexistentActivity(t *testing.T) {
	rr := do(t, newTestMux(), http.MethodDelete, "/activities/Nonexistent%20Club/unregister?email=test@mergington.edu")
	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Contains(t, strings.ToLower(decodeBody(t, rr)["detail"]), "not found")
}

func TestUnregisterAllParticipants(t *testing.T) {
	mux := newTestMux()

	// Drama Club seeds two participants.
	do(t, mux, http.MethodDelete, "/activities/Drama%20Club/unregister?email=lucas@mergington.edu")
	do(t, mux, http.MethodDelete, "/activities/Drama%20Club/unregister?email=grace@mergington.edu")

	rr := do(t, mux, http.MethodGet, "/activities")
	require.Equal(t, http.StatusOK, rr.Code)

	data := listActivities(t, mux)
	require.Empty(t, data["Drama Club"].Participants)
	// Empty rosters serialize as [], never null.
	require.Contains(t, rr.Body.String(), `"participants":[]`)
}

func TestUnknownRosterAction(t *testing.T) {
	rr := do(t, newTestMux(), http.MethodPost, "/activities/Art%20Club/promote?email=x@mergington.edu")
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestSignupAndUnregisterWorkflow(t *testing.T) {
	mux := newTestMux()
	const email = "workflow@mergington.edu"

	initial := len(listActivities(t, mux)["Tennis Club"].Participants)

	rr := do(t, mux, http.MethodPost, "/activities/Tennis%20Club/signup?email="+email)
	require.Equal(t, http.StatusOK, rr.Code)

	afterSignup := listActivities(t, mux)["Tennis Club"].Participants
	require.Len(t, afterSignup, initial+1)
	require.Contains(t, afterSignup, email)

	rr = do(t, mux, http.MethodDelete, "/activities/Tennis%20Club/unregister?email="+email)
	require.Equal(t, http.StatusOK, rr.Code)

	afterUnregister := listActivities(t, mux)["Tennis Club"].Participants
	require.Len(t, afterUnregister, initial)
	require.NotContains(t, afterUnregister, email)
}
