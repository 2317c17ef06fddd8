package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	advisoryapp "github.com/advisory/backend/internal/application/advisory"
	"github.com/advisory/backend/internal/domain/advisory"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupProductOwnerHandler(repos *testRepos) *ProductOwnerHandler {
	service := advisoryapp.NewProductOwnerService(repos.owners, repos.addresses, repos.junctions)
	return NewProductOwnerHandler(service)
}

func seedOwner(t *testing.T, repos *testRepos, firstname, surname string) *advisory.ProductOwner {
	t.Helper()
	owner, err := advisory.NewProductOwner(firstname, surname)
	require.NoError(t, err)
	require.NoError(t, repos.owners.Save(context.Background(), owner))
	return owner
}

func newOwnerRouter(repos *testRepos) *gin.Engine {
	router := setupTestRouter()
	setupProductOwnerHandler(repos).RegisterRoutes(router.Group(""))
	return router
}

func TestProductOwnerHandler_Create_Success(t *testing.T) {
	repos := newTestRepos()
	router := newOwnerRouter(repos)

	w := performJSON(router, http.MethodPost, "/product-owners", advisoryapp.CreateProductOwnerRequest{
		Firstname:   "Margaret",
		Surname:     "Holt",
		DOB:         "1958-03-21",
		Email:       "Margaret.Holt@example.com",
		Nationality: "British",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp advisoryapp.ProductOwnerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, "Margaret", resp.Firstname)
	assert.Equal(t, "margaret.holt@example.com", resp.Email)
	require.NotNil(t, resp.DOB)
	assert.Equal(t, "1958-03-21", *resp.DOB)
	require.NotNil(t, resp.Age)
	assert.Greater(t, *resp.Age, 0)
}

func TestProductOwnerHandler_Create_MissingSurname(t *testing.T) {
	repos := newTestRepos()
	router := newOwnerRouter(repos)

	w := performJSON(router, http.MethodPost, "/product-owners", advisoryapp.CreateProductOwnerRequest{
		Firstname: "Margaret",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decodeDetail(t, w)
	detail, ok := body["detail"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, detail, "surname")
}

func TestProductOwnerHandler_Create_InvalidDOB(t *testing.T) {
	repos := newTestRepos()
	router := newOwnerRouter(repos)

	w := performJSON(router, http.MethodPost, "/product-owners", advisoryapp.CreateProductOwnerRequest{
		Firstname: "Margaret",
		Surname:   "Holt",
		DOB:       "21/03/1958",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decodeDetail(t, w)
	detail, ok := body["detail"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, detail, "dob")
}

func TestProductOwnerHandler_Create_DanglingAddress(t *testing.T) {
	repos := newTestRepos()
	router := newOwnerRouter(repos)

	missing := uuid.New()
	w := performJSON(router, http.MethodPost, "/product-owners", advisoryapp.CreateProductOwnerRequest{
		Firstname: "Margaret",
		Surname:   "Holt",
		AddressID: &missing,
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	decodeDetail(t, w)
}

func TestProductOwnerHandler_Create_WithAddress(t *testing.T) {
	repos := newTestRepos()
	router := newOwnerRouter(repos)
	address := seedAddress(t, repos)

	w := performJSON(router, http.MethodPost, "/product-owners", advisoryapp.CreateProductOwnerRequest{
		Firstname: "Margaret",
		Surname:   "Holt",
		AddressID: &address.ID,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp advisoryapp.ProductOwnerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.AddressID)
	assert.Equal(t, address.ID, *resp.AddressID)
	assert.Nil(t, resp.DOB)
	assert.Nil(t, resp.Age)
}

func TestProductOwnerHandler_Get_NotFound(t *testing.T) {
	repos := newTestRepos()
	router := newOwnerRouter(repos)

	w := performJSON(router, http.MethodGet, "/product-owners/"+uuid.NewString(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	decodeDetail(t, w)
}

func TestProductOwnerHandler_List_Success(t *testing.T) {
	repos := newTestRepos()
	router := newOwnerRouter(repos)
	seedOwner(t, repos, "Margaret", "Holt")
	seedOwner(t, repos, "Arthur", "Penn")

	w := performJSON(router, http.MethodGet, "/product-owners", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(2), body["total"])
}

func TestProductOwnerHandler_Delete_Success(t *testing.T) {
	repos := newTestRepos()
	router := newOwnerRouter(repos)
	owner := seedOwner(t, repos, "Margaret", "Holt")

	w := performJSON(router, http.MethodDelete, "/product-owners/"+owner.ID.String(), nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestProductOwnerHandler_Delete_LinkedToGroup(t *testing.T) {
	repos := newTestRepos()
	router := newOwnerRouter(repos)
	owner := seedOwner(t, repos, "Margaret", "Holt")

	group, err := advisory.NewClientGroup("Holt Family", advisory.ClientGroupTypeFamily)
	require.NoError(t, err)
	require.NoError(t, repos.groups.Save(context.Background(), group))

	junction, err := advisory.NewClientGroupProductOwner(group.ID, owner.ID)
	require.NoError(t, err)
	require.NoError(t, repos.junctions.Save(context.Background(), junction))

	w := performJSON(router, http.MethodDelete, "/product-owners/"+owner.ID.String(), nil)

	assert.Equal(t, http.StatusConflict, w.Code)

	_, err = repos.owners.FindByID(context.Background(), owner.ID)
	assert.NoError(t, err)
}
