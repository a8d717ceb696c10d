package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"enlistco_backend/internal/models"
	"enlistco_backend/internal/services"
	"enlistco_backend/internal/services/dto"
	"enlistco_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPostService struct {
	approveResult *services.ApproveResult
	approveErr    error

	lastSection models.PostSection
}

func (s *stubPostService) CreatePost(req *dto.CreatePostRequest) (*models.JobPost, error) {
	return &models.JobPost{JobTitle: req.EmployerContact.JobTitle, EmployerEmail: req.Email}, nil
}

func (s *stubPostService) GetPost(id string) (*models.JobPost, error) {
	return &models.JobPost{BaseModel: models.BaseModel{ID: id}}, nil
}

func (s *stubPostService) ListPublicPosts() ([]models.JobPost, error)         { return nil, nil }
func (s *stubPostService) ListEmployerPosts(string) ([]models.JobPost, error) { return nil, nil }
func (s *stubPostService) ListPendingPosts() ([]models.JobPost, error)        { return nil, nil }
func (s *stubPostService) SetJobStatus(string, models.JobStatus) error        { return nil }
func (s *stubPostService) DeletePost(string) (*services.DeleteResult, error)  { return nil, nil }

func (s *stubPostService) ApprovePost(adminEmail, postID string, publish bool) (*services.ApproveResult, error) {
	return s.approveResult, s.approveErr
}

func (s *stubPostService) ResubmitEdit(postID string, section models.PostSection, patch *dto.PostPatch) (*services.EditResult, error) {
	s.lastSection = section
	return &services.EditResult{}, nil
}

// testRouter wires the handler behind a stub auth layer so tests can
// exercise the HTTP surface without tokens.
func testRouter(svc services.PostService, email string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(func(c *gin.Context) {
		c.Set("userEmail", email)
		c.Set("isAdmin", true)
	})

	h := NewPostHandler(NewBaseHandler(validator.New()), svc, nil)
	engine.PUT("/posts/:id/permission", h.ApprovePost)
	engine.PUT("/posts/:id", h.ResubmitEdit)
	return engine
}

func TestApprovePostHandlerReportsMirrorFailure(t *testing.T) {
	svc := &stubPostService{
		approveResult: &services.ApproveResult{
			Post:        &models.JobPost{BaseModel: models.BaseModel{ID: "p1"}, Permission: true},
			MirrorErr:   errors.New("notice table unavailable"),
			AlertQueued: true,
		},
	}
	router := testRouter(svc, "admin@enlistco.co")

	req := httptest.NewRequest(http.MethodPut, "/posts/p1/permission", strings.NewReader(`{"publish":true}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code, "a mirror failure still commits the approval")
	assert.Contains(t, rec.Body.String(), "mirrorError")
	assert.Contains(t, rec.Body.String(), `"alertQueued":true`)
}

func TestResubmitEditHandlerRequiresSectionFlag(t *testing.T) {
	svc := &stubPostService{}
	router := testRouter(svc, "employer@acme.test")

	req := httptest.NewRequest(http.MethodPut, "/posts/p1", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResubmitEditHandlerResolvesSection(t *testing.T) {
	svc := &stubPostService{}
	router := testRouter(svc, "employer@acme.test")

	req := httptest.NewRequest(http.MethodPut, "/posts/p1?terms=true", strings.NewReader(`{"salary":"95000"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.SectionTerms, svc.lastSection)
}

func TestSectionFromQuery(t *testing.T) {
	tests := []struct {
		query  string
		want   models.PostSection
		wantOK bool
	}{
		{"postInfo=true", models.SectionContactInfo, true},
		{"description=true", models.SectionDescription, true},
		{"applicationOpts=true", models.SectionApplicationOptions, true},
		{"terms=true", models.SectionTerms, true},
		{"addQuestions=true", models.SectionScreeningQuestions, true},
		{"postInfo=false", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodPut, "/posts/p1?"+tt.query, nil)

		section, ok := sectionFromQuery(c)
		assert.Equal(t, tt.wantOK, ok, tt.query)
		assert.Equal(t, tt.want, section, tt.query)
	}
}
