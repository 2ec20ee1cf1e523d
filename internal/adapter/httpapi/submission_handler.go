package httpapi

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/muthomi-ke/land-platform/internal/plot/domain"
	"github.com/muthomi-ke/land-platform/internal/plot/usecase"
)

// maxUploadBytes caps a single media file, matching the form's stated
// "up to 10MB" limit.
const maxUploadBytes = 10 << 20

type draftRequest struct {
	SellerType    string `json:"seller_type" form:"seller_type"`
	AgencyName    string `json:"agency_name" form:"agency_name"`
	OwnerName     string `json:"owner_name" form:"owner_name"`
	OwnerEmail    string `json:"owner_email" form:"owner_email"`
	OwnerPhone    string `json:"owner_phone" form:"owner_phone"`
	ParcelName    string `json:"parcel_name" form:"parcel_name"`
	Location      string `json:"location" form:"location"`
	Size          string `json:"size" form:"size"`
	Price         string `json:"price" form:"price"`
	Description   string `json:"description" form:"description"`
	Category      string `json:"category" form:"category"`
	AerialViewURL string `json:"aerial_view_url" form:"aerial_view_url"`

	Latitude  *float64 `json:"latitude" form:"latitude"`
	Longitude *float64 `json:"longitude" form:"longitude"`
}

func applyDraft(sub *usecase.Submission, req *draftRequest) {
	sub.SetField("sellerType", req.SellerType)
	sub.SetField("agencyName", req.AgencyName)
	sub.SetField("ownerName", req.OwnerName)
	sub.SetField("ownerEmail", req.OwnerEmail)
	sub.SetField("ownerPhone", req.OwnerPhone)
	sub.SetField("parcelName", req.ParcelName)
	sub.SetField("location", req.Location)
	sub.SetField("size", req.Size)
	sub.SetField("price", req.Price)
	sub.SetField("description", req.Description)
	sub.SetField("category", req.Category)
	sub.SetField("aerialViewUrl", req.AerialViewURL)
	if req.Latitude != nil && req.Longitude != nil {
		sub.PickLocation(*req.Latitude, *req.Longitude)
		// A map pick overwrites the location text; restore the typed value
		// when the client sent both and they differ deliberately.
		if req.Location != "" {
			sub.SetField("location", req.Location)
		}
	}
}

// ValidateStep checks one wizard stage and reports the first failing rule,
// so the front end can gate step transitions server-side.
func (h *Handler) ValidateStep(c *gin.Context) {
	step, err := strconv.Atoi(c.DefaultQuery("step", "1"))
	if err != nil || step < int(usecase.StepSellerInfo) || step > int(usecase.StepMedia) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "step must be 1, 2 or 3"})
		return
	}

	var req draftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub := h.submissions.NewSubmission()
	applyDraft(sub, &req)

	// The media step is validated at submit time, when files are present.
	if usecase.Step(step) == usecase.StepMedia {
		c.JSON(http.StatusOK, gin.H{"valid": true})
		return
	}

	if msg := h.submissions.ValidateStep(usecase.Step(step), sub.Draft()); msg != "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"valid": false, "error": msg})
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true})
}

// SubmitListing is the wizard's final commit: multipart draft fields plus
// media files. Every stage re-validates in order, files upload
// concurrently, and a single plot record is created.
func (h *Handler) SubmitListing(c *gin.Context) {
	var req draftRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub := h.submissions.NewSubmission()
	applyDraft(sub, &req)

	form, err := c.MultipartForm()
	if err == nil && form != nil {
		images, err := readFiles(form.File["images"])
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		sub.SelectImages(images)

		if videos := form.File["video"]; len(videos) > 0 {
			video, err := readFile(videos[0])
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			sub.SelectVideo(video)
		}
	}

	// Walk the wizard forward so every stage's rules apply in order.
	for sub.Step() < usecase.StepMedia {
		if !sub.Next() {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": sub.Error(), "step": int(sub.Step())})
			return
		}
	}

	plot, err := sub.Submit(c.Request.Context())
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPlotData) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": sub.Error(), "step": int(usecase.StepMedia)})
			return
		}
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"plot":    toPlotResponse(plot),
		"message": "Your listing has been submitted successfully and is pending verification!",
	})
}

func readFiles(headers []*multipart.FileHeader) ([]usecase.MediaFile, error) {
	files := make([]usecase.MediaFile, 0, len(headers))
	for _, header := range headers {
		file, err := readFile(header)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	return files, nil
}

func readFile(header *multipart.FileHeader) (usecase.MediaFile, error) {
	f, err := header.Open()
	if err != nil {
		return usecase.MediaFile{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		return usecase.MediaFile{}, err
	}
	if len(data) > maxUploadBytes {
		return usecase.MediaFile{}, errFileTooLarge(header.Filename)
	}
	return usecase.MediaFile{Name: header.Filename, Data: data}, nil
}

type errFileTooLarge string

func (e errFileTooLarge) Error() string {
	return "file " + string(e) + " exceeds the 10MB limit"
}
