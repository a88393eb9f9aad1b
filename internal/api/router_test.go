package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/vetipro/quoteapi/internal/catalog"
	"github.com/vetipro/quoteapi/internal/config"
	"github.com/vetipro/quoteapi/internal/domain"
	"github.com/vetipro/quoteapi/internal/draft"
	"github.com/vetipro/quoteapi/internal/repository"
	"github.com/vetipro/quoteapi/internal/repository/inmem"
	"github.com/vetipro/quoteapi/internal/service"
	"github.com/vetipro/quoteapi/internal/submit"
)

func newTestRouter(t *testing.T) (*gin.Engine, *repository.Repositories) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	cfg := &config.Config{Environment: "test"}
	repos := inmem.NewRepositories()

	cat := catalog.New(logger)
	store := draft.NewMemoryStore()
	// empty endpoint: the submitter assembles the payload and succeeds
	submitter := submit.NewClient(config.SubmitConfig{}, logger)
	basketSvc := service.NewBasketService(logger)
	quoteSvc := service.NewQuoteService(store, repos, submitter, logger)

	return NewRouter(cfg, cat, basketSvc, quoteSvc, repos, logger), repos
}

// client keeps the session cookie across requests, like a browser tab.
type client struct {
	router  *gin.Engine
	cookies []*http.Cookie
}

func (cl *client) do(method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for _, cookie := range cl.cookies {
		req.AddCookie(cookie)
	}

	res := httptest.NewRecorder()
	cl.router.ServeHTTP(res, req)

	if cookies := res.Result().Cookies(); len(cookies) > 0 {
		cl.cookies = cookies
	}
	return res
}

func (cl *client) doJSON(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	return cl.do(method, path, reader, "application/json")
}

func decode(t *testing.T, res *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter(t)
	cl := &client{router: router}

	res := cl.do("GET", "/health", nil, "")
	assert.Equal(t, http.StatusOK, res.Code)
}

func TestPackEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)
	cl := &client{router: router}

	res := cl.do("GET", "/v1/packs", nil, "")
	require.Equal(t, http.StatusOK, res.Code)
	body := decode(t, res)
	packs := body["packs"].([]interface{})
	assert.Len(t, packs, 4)

	res = cl.do("GET", "/v1/packs/restaurant", nil, "")
	require.Equal(t, http.StatusOK, res.Code)
	pack := decode(t, res)
	assert.Equal(t, "Pack Restaurant", pack["title"])
	assert.Equal(t, 399.99, pack["totalPrice"])
	assert.Len(t, pack["items"].([]interface{}), 4)

	res = cl.do("GET", "/v1/packs/boulangerie", nil, "")
	assert.Equal(t, http.StatusNotFound, res.Code)
}

func TestQuoteWizardFlow(t *testing.T) {
	router, _ := newTestRouter(t)
	cl := &client{router: router}

	// enter with a pack design handed off by the builder
	res := cl.doJSON("POST", "/v1/quote/enter", `{
		"design": {
			"designNumber": "PACK-AB12CD34",
			"productName": "Restaurant",
			"quantity": 5,
			"selectedSize": "L",
			"items": [{"name": "Veste de Chef"}, {"name": "Tablier Professionnel"}]
		}
	}`)
	require.Equal(t, http.StatusOK, res.Code)
	body := decode(t, res)
	assert.Equal(t, "CONTACT", body["step"])
	assert.Equal(t, float64(1), body["design_count"])
	assert.Equal(t, float64(5), body["total_quantity"])
	assert.Equal(t, true, body["submit_enabled"])

	// pack designs pre-populate the product step
	product := body["product"].(map[string]interface{})
	assert.Equal(t, "Restaurant", product["productName"])
	assert.Equal(t, "Pack Restaurant comprenant: Veste de Chef, Tablier Professionnel", product["description"])

	// replaying the same design is idempotent
	res = cl.doJSON("POST", "/v1/quote/enter", `{
		"design": {"designNumber": "PACK-AB12CD34", "productName": "Restaurant", "quantity": 5, "selectedSize": "L"}
	}`)
	body = decode(t, res)
	assert.Equal(t, float64(1), body["design_count"])

	// an invalid email blocks the contact step
	res = cl.doJSON("POST", "/v1/quote/steps/contact", `{
		"name": "Amine Ben Salah", "email": "not-an-email", "phone": "21612345678"
	}`)
	assert.Equal(t, http.StatusUnprocessableEntity, res.Code)

	res = cl.doJSON("GET", "/v1/quote", "")
	body = decode(t, res)
	assert.Equal(t, "CONTACT", body["step"])

	// a short phone blocks too
	res = cl.doJSON("POST", "/v1/quote/steps/contact", `{
		"name": "Amine Ben Salah", "email": "amine@example.com", "phone": "123"
	}`)
	assert.Equal(t, http.StatusUnprocessableEntity, res.Code)

	// valid contact fields advance to the product step
	res = cl.doJSON("POST", "/v1/quote/steps/contact", `{
		"name": "Amine Ben Salah", "email": "amine@example.com", "phone": "21612345678", "company": "Le Gourmet"
	}`)
	require.Equal(t, http.StatusOK, res.Code)
	body = decode(t, res)
	assert.Equal(t, "PRODUCT", body["step"])

	// a short description blocks the product step
	res = cl.doJSON("POST", "/v1/quote/steps/product", `{
		"productName": "Restaurant", "quantity": 5, "size": "L", "description": "court"
	}`)
	assert.Equal(t, http.StatusUnprocessableEntity, res.Code)

	res = cl.doJSON("POST", "/v1/quote/steps/product", `{
		"productName": "Restaurant", "quantity": 5, "size": "L",
		"description": "Broderie du logo sur chaque veste et tablier"
	}`)
	require.Equal(t, http.StatusOK, res.Code)
	body = decode(t, res)
	assert.Equal(t, "REVIEW", body["step"])

	// backward transition is unconditional
	res = cl.doJSON("POST", "/v1/quote/back", "")
	body = decode(t, res)
	assert.Equal(t, "PRODUCT", body["step"])

	res = cl.doJSON("POST", "/v1/quote/steps/product", `{
		"productName": "Restaurant", "quantity": 5, "size": "L",
		"description": "Broderie du logo sur chaque veste et tablier"
	}`)
	require.Equal(t, http.StatusOK, res.Code)

	// attachments: the oversized file is rejected, its sibling accepted
	form, contentType := attachmentForm(t, []testFile{
		{name: "logo.png", mime: "image/png", size: 6 * 1024 * 1024},
		{name: "maquette.pdf", mime: "application/pdf", size: 1 * 1024 * 1024},
	})
	res = cl.do("POST", "/v1/quote/attachments", form, contentType)
	require.Equal(t, http.StatusOK, res.Code)
	body = decode(t, res)
	require.Len(t, body["accepted"].([]interface{}), 1)
	require.Len(t, body["rejected"].([]interface{}), 1)
	accepted := body["accepted"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "maquette.pdf", accepted["filename"])

	// submit succeeds and clears the stored designs
	res = cl.doJSON("POST", "/v1/quote/submit", `{"additionalNotes": "livraison avant fin du mois"}`)
	require.Equal(t, http.StatusOK, res.Code)
	body = decode(t, res)
	assert.Equal(t, "SUCCESS", body["step"])
	assert.Equal(t, float64(0), body["design_count"])

	// a repeat visit with no payload shows zero designs
	res = cl.doJSON("POST", "/v1/quote/enter", "")
	body = decode(t, res)
	assert.Equal(t, float64(0), body["design_count"])
}

func TestSubmitBlockedWithoutDesigns(t *testing.T) {
	router, _ := newTestRouter(t)
	cl := &client{router: router}

	cl.doJSON("POST", "/v1/quote/steps/contact", `{
		"name": "Amine Ben Salah", "email": "amine@example.com", "phone": "21612345678"
	}`)
	cl.doJSON("POST", "/v1/quote/steps/product", `{
		"productName": "Veste de Chef", "quantity": 2, "size": "M",
		"description": "Broderie du logo sur la poche avant"
	}`)

	res := cl.doJSON("POST", "/v1/quote/submit", "")
	assert.Equal(t, http.StatusBadRequest, res.Code)
}

func TestBasketFlow(t *testing.T) {
	router, _ := newTestRouter(t)
	cl := &client{router: router}

	// malformed drag payload is a no-op drop
	res := cl.do("POST", "/v1/basket/drop", strings.NewReader(`{"id":"ves`), "application/json")
	assert.Equal(t, http.StatusBadRequest, res.Code)

	res = cl.do("GET", "/v1/basket", nil, "")
	body := decode(t, res)
	assert.Equal(t, float64(0), body["item_count"])

	res = cl.do("POST", "/v1/basket/drop",
		strings.NewReader(`{"id":"veste-cuisine-1","name":"Veste de Chef","price":129.99}`), "application/json")
	require.Equal(t, http.StatusOK, res.Code)

	res = cl.do("POST", "/v1/basket/drop",
		strings.NewReader(`{"id":"tablier-cuisine-1","name":"Tablier Professionnel","price":79.99}`), "application/json")
	require.Equal(t, http.StatusOK, res.Code)
	body = decode(t, res)
	assert.Equal(t, float64(2), body["item_count"])
	assert.InDelta(t, 209.98, body["total"].(float64), 0.001)

	res = cl.doJSON("PUT", "/v1/basket/note", `{"note": "Logo sur la poche"}`)
	require.Equal(t, http.StatusOK, res.Code)
	body = decode(t, res)
	assert.Equal(t, "Logo sur la poche", body["note"])

	res = cl.doJSON("POST", "/v1/basket/assemble", `{"quantity": 3, "selectedSize": "M"}`)
	require.Equal(t, http.StatusOK, res.Code)
	body = decode(t, res)
	design := body["design"].(map[string]interface{})
	assert.True(t, strings.HasPrefix(design["designNumber"].(string), "PACK-"))

	// assembling consumed the basket
	res = cl.do("GET", "/v1/basket", nil, "")
	body = decode(t, res)
	assert.Equal(t, float64(0), body["item_count"])

	// the design flows into the quote draft
	designJSON, err := json.Marshal(design)
	require.NoError(t, err)
	res = cl.doJSON("POST", "/v1/quote/enter", fmt.Sprintf(`{"design": %s}`, designJSON))
	require.Equal(t, http.StatusOK, res.Code)
	body = decode(t, res)
	assert.Equal(t, float64(1), body["design_count"])
	assert.Equal(t, float64(3), body["total_quantity"])
}

func TestAdminAuth(t *testing.T) {
	router, repos := newTestRouter(t)
	cl := &client{router: router}

	res := cl.do("GET", "/v1/admin/quotes", nil, "")
	assert.Equal(t, http.StatusUnauthorized, res.Code)

	hash, err := bcrypt.GenerateFromPassword([]byte("test-key"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, repos.APIClient.Create(context.Background(), &domain.APIClient{
		Name:       "Atelier Dashboard",
		APIKeyHash: string(hash),
		IsActive:   true,
	}))

	req := httptest.NewRequest("GET", "/v1/admin/quotes", nil)
	req.Header.Set("Authorization", "Bearer wrong-key")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest("GET", "/v1/admin/quotes", nil)
	req.Header.Set("Authorization", "Bearer test-key")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

type testFile struct {
	name string
	mime string
	size int
}

func attachmentForm(t *testing.T, files []testFile) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for i, file := range files {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(
			`form-data; name="file-%d"; filename=%q`, i, file.name))
		header.Set("Content-Type", file.mime)

		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(bytes.Repeat([]byte("a"), file.size))
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}
