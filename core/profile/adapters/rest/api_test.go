// Copyright 2025 Nhat-Nguyen Nguyen
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rest_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"profiles/core/profile/adapters/persistence/memory"
	"profiles/core/profile/adapters/rest"
	"profiles/modules/middleware/problem"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	store := memory.New()
	api := rest.NewProfileService(store, store)

	mux := http.NewServeMux()
	api.Register(mux)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func createBody(email string, dni int, userID int64) map[string]any {
	return map[string]any{
		"firstName": "Ana",
		"lastName":  "Lopez",
		"dni":       dni,
		"email":     email,
		"age":       30,
		"location":  "Madrid",
		"userId":    userID,
	}
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	buf, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(buf))
	require.NoError(t, err)
	return resp
}

func putJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	buf, err := json.Marshal(body)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPut, url, bytes.NewReader(buf))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeProfile(t *testing.T, resp *http.Response) rest.ProfileResource {
	t.Helper()
	defer resp.Body.Close()
	var out rest.SuccessProfile
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out.Data
}

func decodeProblem(t *testing.T, resp *http.Response) problem.Problem {
	t.Helper()
	defer resp.Body.Close()
	assert.Equal(t, "application/problem+json", resp.Header.Get("Content-Type"))
	var out problem.Problem
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestCreateProfileEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/v1/profiles", createBody("ana@example.com", 12345678, 7))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "/api/v1/profiles/1", resp.Header.Get("Location"))

	got := decodeProfile(t, resp)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "Ana", got.FirstName)
	assert.Equal(t, "ana@example.com", got.Email)
	assert.Equal(t, int64(7), got.UserID)
}

func TestCreateProfileEndpoint_Validation(t *testing.T) {
	srv := newTestServer(t)

	body := createBody("ana@example.com", 12345678, 7)
	body["age"] = 121
	resp := postJSON(t, srv.URL+"/api/v1/profiles", body)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	prob := decodeProblem(t, resp)
	require.NotNil(t, prob.InvalidParams)
	require.Len(t, *prob.InvalidParams, 1)
	assert.Equal(t, "age", (*prob.InvalidParams)[0].Name)
}

func TestCreateProfileEndpoint_Duplicates(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/v1/profiles", createBody("ana@example.com", 12345678, 7))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// same email
	resp = postJSON(t, srv.URL+"/api/v1/profiles", createBody("ana@example.com", 11111111, 8))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// same user id
	resp = postJSON(t, srv.URL+"/api/v1/profiles", createBody("eve@example.com", 11111111, 7))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// same dni
	resp = postJSON(t, srv.URL+"/api/v1/profiles", createBody("eve@example.com", 12345678, 9))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}

func TestGetProfileEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/v1/profiles", createBody("ana@example.com", 12345678, 7))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp, err := http.Get(srv.URL + "/api/v1/profiles/1")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `"v:1"`, resp.Header.Get("ETag"))
	got := decodeProfile(t, resp)
	assert.Equal(t, int64(1), got.ID)

	resp, err = http.Get(srv.URL + "/api/v1/profiles/99")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/api/v1/profiles/abc")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestLookupProfileEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/v1/profiles", createBody("ana@example.com", 12345678, 7))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
	resp = postJSON(t, srv.URL+"/api/v1/profiles", createBody("maria@example.com", 87654321, 8))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp, err := http.Get(srv.URL + "/api/v1/profiles?dni=12345678")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(1), decodeProfile(t, resp).ID)

	resp, err = http.Get(srv.URL + "/api/v1/profiles?userId=8")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(2), decodeProfile(t, resp).ID)

	// dni wins when both parameters are present
	resp, err = http.Get(srv.URL + "/api/v1/profiles?dni=12345678&userId=8")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(1), decodeProfile(t, resp).ID)

	// neither parameter is a client error
	resp, err = http.Get(srv.URL + "/api/v1/profiles")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// unknown dni
	resp, err = http.Get(srv.URL + "/api/v1/profiles?dni=11111111")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestUpdateProfileEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/v1/profiles", createBody("ana@example.com", 12345678, 7))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	update := map[string]any{
		"firstName": "Maria",
		"lastName":  "Garcia",
		"dni":       87654321,
		"email":     "maria@example.com",
		"age":       25,
		"location":  "Valencia",
	}

	resp = putJSON(t, srv.URL+"/api/v1/profiles/1", update)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeProfile(t, resp)
	assert.Equal(t, "Maria", got.FirstName)
	assert.Equal(t, 87654321, got.Dni)
	assert.Equal(t, int64(7), got.UserID)

	resp = putJSON(t, srv.URL+"/api/v1/profiles/99", update)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	update["age"] = 0
	resp = putJSON(t, srv.URL+"/api/v1/profiles/1", update)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close()
}

func TestHealthzEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()
}

func TestProblemBodyShape(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/profiles/99")
	require.NoError(t, err)
	prob := decodeProblem(t, resp)
	assert.Equal(t, http.StatusNotFound, prob.Status)
	assert.Equal(t, "Not Found", prob.Title)
	require.NotNil(t, prob.Detail)
	assert.Equal(t, "profile not found", *prob.Detail)
}
