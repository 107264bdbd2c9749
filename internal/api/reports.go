package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kilnworks/safetydesk/pkg/types"
)

// createdResponse is the body returned by createReport.
type createdResponse struct {
	ID string `json:"id"`
}

// statusRequest is the body accepted by updateStatus.
type statusRequest struct {
	Status string `json:"status"`
}

// listReports returns the full collection for one report type, newest
// first. No pagination: the admin views hold the whole set in memory.
func (s *Server) listReports(c echo.Context) error {
	reports, err := s.reports(c)
	if err != nil {
		return err
	}
	records, err := reports.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, records)
}

func (s *Server) getReport(c echo.Context) error {
	reports, err := s.reports(c)
	if err != nil {
		return err
	}
	rec, err := reports.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rec)
}

// createReport accepts either a JSON object of fields or a multipart form
// with a "record" JSON part and an optional "photo" file.
func (s *Server) createReport(c echo.Context) error {
	reports, err := s.reports(c)
	if err != nil {
		return err
	}

	fields, attachment, err := decodeCreateBody(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := reports.Create(c.Request().Context(), fields, attachment)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, createdResponse{ID: id})
}

func decodeCreateBody(c echo.Context) (map[string]any, *types.Attachment, error) {
	if _, err := c.MultipartForm(); err != nil {
		// Plain JSON body.
		var fields map[string]any
		if err := json.NewDecoder(c.Request().Body).Decode(&fields); err != nil {
			return nil, nil, err
		}
		return fields, nil, nil
	}

	var fields map[string]any
	if raw := c.FormValue("record"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &fields); err != nil {
			return nil, nil, err
		}
	} else {
		fields = make(map[string]any)
	}

	file, err := c.FormFile("photo")
	if err != nil {
		return fields, nil, nil // no photo part
	}
	src, err := file.Open()
	if err != nil {
		return nil, nil, err
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, nil, err
	}
	return fields, &types.Attachment{Filename: file.Filename, Data: data}, nil
}

func (s *Server) updateStatus(c echo.Context) error {
	reports, err := s.reports(c)
	if err != nil {
		return err
	}
	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := reports.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) updateReport(c echo.Context) error {
	reports, err := s.reports(c)
	if err != nil {
		return err
	}
	var fields map[string]any
	if err := json.NewDecoder(c.Request().Body).Decode(&fields); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := reports.UpdateRecord(c.Request().Context(), c.Param("id"), fields); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) deleteReport(c echo.Context) error {
	reports, err := s.reports(c)
	if err != nil {
		return err
	}
	if err := reports.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// getPhoto streams the record's write-once attachment.
func (s *Server) getPhoto(c echo.Context) error {
	reports, err := s.reports(c)
	if err != nil {
		return err
	}
	att, err := reports.Attachment(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.Blob(http.StatusOK, "application/octet-stream", att.Data)
}
