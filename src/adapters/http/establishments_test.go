package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	httpadapter "placedir/src/adapters/http"
	"placedir/src/domain"
	"placedir/src/services/directory"
	"placedir/src/test_artefacts/stubs"
)

var _ = Describe("Establishment endpoints", func() {
	var (
		store    *fakeStore
		geocoder *fakeGeocoder
		server   *httpadapter.Server
	)

	BeforeEach(func() {
		store = &fakeStore{}
		geocoder = &fakeGeocoder{}
		service := directory.NewDirectoryService(store, geocoder, slog.Default())
		server = httpadapter.NewServer(slog.Default(), 0, service, "")
	})

	do := func(method, target string, body any) *httptest.ResponseRecorder {
		var reader *bytes.Reader
		if body != nil {
			encoded, err := json.Marshal(body)
			Expect(err).NotTo(HaveOccurred())
			reader = bytes.NewReader(encoded)
		} else {
			reader = bytes.NewReader(nil)
		}

		req := httptest.NewRequest(method, target, reader)
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		server.Handler().ServeHTTP(recorder, req)
		return recorder
	}

	Context("POST /api/establishments", func() {
		It("creates a record and returns it with the assigned id", func() {
			recorder := do(http.MethodPost, "/api/establishments", map[string]any{
				"name":        "Ayala Mall",
				"category":    "Mall",
				"rating":      4.5,
				"description": "Big mall",
				"lat":         8.48,
				"lng":         124.65,
			})

			Expect(recorder.Code).To(Equal(http.StatusCreated))

			var created map[string]any
			Expect(json.Unmarshal(recorder.Body.Bytes(), &created)).To(Succeed())
			Expect(created["id"]).NotTo(BeEmpty())
			Expect(created["name"]).To(Equal("Ayala Mall"))
			Expect(created["category"]).To(Equal("Mall"))
			Expect(created["rating"]).To(Equal(4.5))
			Expect(created["description"]).To(Equal("Big mall"))
			Expect(created["lat"]).To(Equal(8.48))
			Expect(created["lng"]).To(Equal(124.65))

			// The subsequent listing contains exactly this record
			listing := do(http.MethodGet, "/api/establishments", nil)
			Expect(listing.Code).To(Equal(http.StatusOK))

			var listed []map[string]any
			Expect(json.Unmarshal(listing.Body.Bytes(), &listed)).To(Succeed())
			Expect(listed).To(HaveLen(1))
			Expect(listed[0]["id"]).To(Equal(created["id"]))
		})

		It("rejects a structurally malformed payload with the cause and persists nothing", func() {
			recorder := do(http.MethodPost, "/api/establishments", map[string]any{
				"name": 12345,
			})

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))

			var body map[string]string
			Expect(json.Unmarshal(recorder.Body.Bytes(), &body)).To(Succeed())
			Expect(body["error"]).NotTo(BeEmpty())
			Expect(store.records).To(BeEmpty())
		})
	})

	Context("GET /api/establishments", func() {
		It("returns an empty JSON array for an empty directory", func() {
			recorder := do(http.MethodGet, "/api/establishments", nil)

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(strings.TrimSpace(recorder.Body.String())).To(Equal("[]"))
		})

		It("returns records in store order without internal timestamps", func() {
			first := stubs.NewEstablishmentStub().WithName("First").Get()
			second := stubs.NewEstablishmentStub().WithName("Second").Get()
			store.records = append(store.records, first, second)

			recorder := do(http.MethodGet, "/api/establishments", nil)

			Expect(recorder.Code).To(Equal(http.StatusOK))

			var listed []map[string]any
			Expect(json.Unmarshal(recorder.Body.Bytes(), &listed)).To(Succeed())
			Expect(listed).To(HaveLen(2))
			Expect(listed[0]["name"]).To(Equal("First"))
			Expect(listed[1]["name"]).To(Equal("Second"))
			Expect(listed[0]).NotTo(HaveKey("created_at"))
		})

		It("hides the store failure cause behind a generic message", func() {
			store.failErr = fmt.Errorf("dial tcp 10.0.0.5:5432: connect: connection refused: %w", domain.ErrStoreUnavailable)

			recorder := do(http.MethodGet, "/api/establishments", nil)

			Expect(recorder.Code).To(Equal(http.StatusInternalServerError))

			var body map[string]string
			Expect(json.Unmarshal(recorder.Body.Bytes(), &body)).To(Succeed())
			Expect(body["error"]).To(Equal(domain.ErrUnavailableServer.Error()))
			Expect(body["error"]).NotTo(ContainSubstring("dial tcp"))
		})
	})

	Context("id-addressed endpoints", func() {
		It("gets a record by id", func() {
			record := stubs.NewEstablishmentStub().Get()
			store.records = append(store.records, record)

			recorder := do(http.MethodGet, "/api/establishments/"+record.ID, nil)

			Expect(recorder.Code).To(Equal(http.StatusOK))

			var fetched map[string]any
			Expect(json.Unmarshal(recorder.Body.Bytes(), &fetched)).To(Succeed())
			Expect(fetched["id"]).To(Equal(record.ID))
		})

		It("returns 404 for unknown ids", func() {
			recorder := do(http.MethodGet, "/api/establishments/missing", nil)

			Expect(recorder.Code).To(Equal(http.StatusNotFound))

			var body map[string]string
			Expect(json.Unmarshal(recorder.Body.Bytes(), &body)).To(Succeed())
			Expect(body["error"]).To(Equal("Not found"))
		})

		It("patches a record, leaving omitted fields untouched", func() {
			record := stubs.NewEstablishmentStub().WithName("Before").WithRating(3).Get()
			store.records = append(store.records, record)

			recorder := do(http.MethodPut, "/api/establishments/"+record.ID, map[string]any{
				"name": "After",
			})

			Expect(recorder.Code).To(Equal(http.StatusOK))

			var updated map[string]any
			Expect(json.Unmarshal(recorder.Body.Bytes(), &updated)).To(Succeed())
			Expect(updated["name"]).To(Equal("After"))
			Expect(updated["rating"]).To(Equal(3.0))
		})

		It("deletes a record and confirms it", func() {
			record := stubs.NewEstablishmentStub().Get()
			store.records = append(store.records, record)

			recorder := do(http.MethodDelete, "/api/establishments/"+record.ID, nil)

			Expect(recorder.Code).To(Equal(http.StatusOK))

			var body map[string]string
			Expect(json.Unmarshal(recorder.Body.Bytes(), &body)).To(Succeed())
			Expect(body["message"]).To(Equal("Deleted"))
			Expect(store.records).To(BeEmpty())
		})

		It("returns 404 when deleting an unknown id", func() {
			recorder := do(http.MethodDelete, "/api/establishments/missing", nil)

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})
	})
})
