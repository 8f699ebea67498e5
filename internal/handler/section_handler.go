package handler

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/threadcraft/internal/service"
)

// UpdateSection handles one edit request against a section: text plus an
// optional image and video upload. The outcome is reported as a flash
// message on the dashboard.
func (a *API) UpdateSection(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		c.String(http.StatusNotFound, "Page not found")
		return
	}

	input := service.SectionUpdateInput{Content: c.PostForm("content")}

	imageFile, closeImage, err := formUpload(c, "image")
	if err != nil {
		a.rejectUpload(c, err)
		return
	}
	if closeImage != nil {
		defer closeImage()
	}
	input.Image = imageFile

	videoFile, closeVideo, err := formUpload(c, "video")
	if err != nil {
		a.rejectUpload(c, err)
		return
	}
	if closeVideo != nil {
		defer closeVideo()
	}
	input.Video = videoFile

	if _, err := a.sections.Update(id, input); err != nil {
		switch {
		case errors.Is(err, service.ErrSectionNotFound):
			c.String(http.StatusNotFound, "Page not found")
			return
		case errors.Is(err, service.ErrContentTooLong):
			addFlash(c, "Content exceeds maximum length of 500 characters")
		case errors.Is(err, service.ErrInvalidFileType):
			addFlash(c, "Invalid file type")
		case errors.Is(err, service.ErrAssetWrite):
			addFlash(c, "Error saving uploaded file")
		default:
			c.Error(err)
			addFlash(c, "An error occurred while updating the section")
		}
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	addFlash(c, "Section updated successfully")
	c.Redirect(http.StatusFound, "/admin")
}

// formUpload opens the named file part if it was submitted. The returned
// closer releases the part once the update has run.
func formUpload(c *gin.Context, name string) (*service.AssetUpload, func(), error) {
	header, err := c.FormFile(name)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	if header.Filename == "" {
		return nil, nil, nil
	}

	file, err := header.Open()
	if err != nil {
		return nil, nil, err
	}

	upload := &service.AssetUpload{Filename: header.Filename, Data: file}
	return upload, func() { closeQuietly(file) }, nil
}

func closeQuietly(f multipart.File) {
	_ = f.Close()
}

// rejectUpload reports a failed multipart parse, distinguishing oversized
// request bodies from everything else.
func (a *API) rejectUpload(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		c.String(http.StatusRequestEntityTooLarge, "File too large (max 16MB)")
		return
	}

	c.Error(err)
	addFlash(c, "An error occurred while updating the section")
	c.Redirect(http.StatusFound, "/admin")
}
