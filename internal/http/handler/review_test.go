package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"lintora.co/server/internal/http/handler"
	"lintora.co/server/internal/http/middleware"
	"lintora.co/server/internal/model"
	"lintora.co/server/internal/review"
	"lintora.co/server/internal/service"
)

func activeUser() *model.User {
	return &model.User{
		ID:    101,
		Email: "dev@example.com",
		Role:  model.RoleUser,
		Subscription: model.Subscription{
			Plan:                model.PlanFree,
			Status:              model.SubscriptionActive,
			ReviewsLeft:         5,
			ReviewsUsed:         5,
			TotalReviewsAllowed: 10,
		},
	}
}

var _ = Describe("ReviewHandler", func() {
	var (
		router        *gin.Engine
		auth          *mockAuthService
		reviews       *mockReviewService
		history       *mockHistoryService
		subscriptions *mockSubscriptionService
		user          *model.User
	)

	sessionRequest := func(method, path string, body []byte) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req.AddCookie(&http.Cookie{Name: "lintora_session", Value: "55"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)

		user = activeUser()
		auth = &mockAuthService{
			validateSessionFn: func(_ context.Context, sessionID int64) (*model.User, error) {
				Expect(sessionID).To(Equal(int64(55)))
				return user, nil
			},
		}
		reviews = &mockReviewService{}
		history = &mockHistoryService{}
		subscriptions = &mockSubscriptionService{}

		h := handler.NewReviewHandler(reviews, history, 1024)
		group := gin.New()
		group.Use(middleware.RequireAuth(auth))
		quota := middleware.RequireQuota(subscriptions)
		group.POST("/review/code", quota, h.ReviewCode)
		group.POST("/review/file", quota, h.ReviewFile)
		group.POST("/review/incremental", quota, h.ReviewIncremental)
		group.POST("/review/fix", h.Fix)
		group.POST("/review/complete-fix", h.CompleteFix)
		group.GET("/reviews", h.History)
		router = group
	})

	Describe("POST /review/code", func() {
		It("returns the analysis result", func() {
			reviews.analyzeCodeFn = func(_ context.Context, u *model.User, req review.Request) (*model.AnalysisResult, error) {
				Expect(u.ID).To(Equal(int64(101)))
				Expect(req.Code).To(Equal("print(1)"))
				Expect(req.Language).To(Equal("python"))
				return &model.AnalysisResult{
					Summary: model.Summary{TotalFindings: 1, High: 1, OverallScore: 90},
				}, nil
			}

			body, _ := json.Marshal(map[string]any{
				"code":     "print(1)",
				"language": "python",
			})
			w := sessionRequest(http.MethodPost, "/review/code", body)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			summary := resp["summary"].(map[string]any)
			Expect(summary["overallScore"]).To(BeNumerically("==", 90))
			sub := resp["subscription"].(map[string]any)
			Expect(sub["plan"]).To(Equal("free"))
			Expect(sub["reviewsLeft"]).To(BeNumerically("==", 5))
		})

		It("maps provider failures to bad gateway", func() {
			reviews.analyzeCodeFn = func(_ context.Context, _ *model.User, _ review.Request) (*model.AnalysisResult, error) {
				return nil, fmt.Errorf("%w: timeout", service.ErrProvider)
			}

			body, _ := json.Marshal(map[string]any{"code": "x", "language": "go"})
			w := sessionRequest(http.MethodPost, "/review/code", body)

			Expect(w.Code).To(Equal(http.StatusBadGateway))
		})

		It("passes analysis types and guidelines through", func() {
			body, _ := json.Marshal(map[string]any{
				"code":          "x",
				"language":      "go",
				"analysisTypes": []string{"security"},
				"guidelines":    []string{"no panics"},
			})
			w := sessionRequest(http.MethodPost, "/review/code", body)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(reviews.lastRequest.AnalysisTypes).To(ConsistOf(model.AnalysisSecurity))
			Expect(reviews.lastRequest.Guidelines).To(ConsistOf("no panics"))
		})

		It("accepts a request without a language", func() {
			body, _ := json.Marshal(map[string]any{"code": "print(1)"})
			w := sessionRequest(http.MethodPost, "/review/code", body)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(reviews.lastRequest.Code).To(Equal("print(1)"))
			Expect(reviews.lastRequest.Language).To(BeEmpty())
		})

		It("returns 400 when code is missing", func() {
			body, _ := json.Marshal(map[string]any{"language": "go"})
			w := sessionRequest(http.MethodPost, "/review/code", body)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 400 for unknown analysis types", func() {
			reviews.analyzeCodeFn = func(_ context.Context, _ *model.User, _ review.Request) (*model.AnalysisResult, error) {
				return nil, service.ErrInvalidAnalysisType
			}

			body, _ := json.Marshal(map[string]any{"code": "x", "language": "go"})
			w := sessionRequest(http.MethodPost, "/review/code", body)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 401 without a session", func() {
			body, _ := json.Marshal(map[string]any{"code": "x", "language": "go"})
			req := httptest.NewRequest(http.MethodPost, "/review/code", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("returns 403 with ledger details when quota is exhausted", func() {
			subscriptions.checkQuotaFn = func(_ *model.User) error {
				return service.ErrQuotaExceeded
			}
			user.Subscription.ReviewsLeft = 0
			user.Subscription.ReviewsUsed = 10

			body, _ := json.Marshal(map[string]any{"code": "x", "language": "go"})
			w := sessionRequest(http.MethodPost, "/review/code", body)

			Expect(w.Code).To(Equal(http.StatusForbidden))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["plan"]).To(Equal("free"))
			Expect(resp["reviewsLeft"]).To(BeNumerically("==", 0))
			Expect(resp["reviewsUsed"]).To(BeNumerically("==", 10))
		})
	})

	Describe("POST /review/file", func() {
		multipartUpload := func(filename, contents string) (*bytes.Buffer, string) {
			var buf bytes.Buffer
			mw := multipart.NewWriter(&buf)
			fw, err := mw.CreateFormFile("file", filename)
			Expect(err).NotTo(HaveOccurred())
			_, err = fw.Write([]byte(contents))
			Expect(err).NotTo(HaveOccurred())
			Expect(mw.Close()).To(Succeed())
			return &buf, mw.FormDataContentType()
		}

		It("detects the language from the extension", func() {
			buf, contentType := multipartUpload("main.go", "package main")

			req := httptest.NewRequest(http.MethodPost, "/review/file", buf)
			req.Header.Set("Content-Type", contentType)
			req.AddCookie(&http.Cookie{Name: "lintora_session", Value: "55"})
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(reviews.lastRequest.Language).To(Equal("go"))
			Expect(reviews.lastRequest.Filename).To(Equal("main.go"))
			Expect(reviews.lastRequest.Code).To(Equal("package main"))
		})

		It("rejects disallowed file types", func() {
			buf, contentType := multipartUpload("image.png", "not code")

			req := httptest.NewRequest(http.MethodPost, "/review/file", buf)
			req.Header.Set("Content-Type", contentType)
			req.AddCookie(&http.Cookie{Name: "lintora_session", Value: "55"})
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("POST /review/fix", func() {
		It("returns the fixed code", func() {
			reviews.generateFixFn = func(_ context.Context, code string, finding model.Finding, language string) (string, error) {
				Expect(code).To(Equal("broken()"))
				Expect(finding.Title).To(Equal("Bug"))
				return "fixed()", nil
			}

			body, _ := json.Marshal(map[string]any{
				"code":     "broken()",
				"language": "go",
				"finding":  map[string]any{"title": "Bug", "severity": "high"},
			})
			w := sessionRequest(http.MethodPost, "/review/fix", body)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["fixedCode"]).To(Equal("fixed()"))
		})

		It("accepts a fix request without a language", func() {
			body, _ := json.Marshal(map[string]any{
				"code":    "broken()",
				"finding": map[string]any{"title": "Bug"},
			})
			w := sessionRequest(http.MethodPost, "/review/fix", body)

			Expect(w.Code).To(Equal(http.StatusOK))
		})

		It("is not quota gated", func() {
			subscriptions.checkQuotaFn = func(_ *model.User) error {
				return service.ErrQuotaExceeded
			}

			body, _ := json.Marshal(map[string]any{
				"code":     "broken()",
				"language": "go",
				"finding":  map[string]any{"title": "Bug"},
			})
			w := sessionRequest(http.MethodPost, "/review/fix", body)

			Expect(w.Code).To(Equal(http.StatusOK))
		})
	})

	Describe("GET /reviews", func() {
		It("lists the account's usage records", func() {
			history.listReviewsFn = func(_ context.Context, userID int64, _ int) ([]model.ReviewRecord, error) {
				Expect(userID).To(Equal(int64(101)))
				return []model.ReviewRecord{{ID: 1, UserID: 101, Language: "go", OverallScore: 90}}, nil
			}

			w := sessionRequest(http.MethodGet, "/reviews", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string][]model.ReviewRecord
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["reviews"]).To(HaveLen(1))
			Expect(resp["reviews"][0].Language).To(Equal("go"))
		})
	})
})
