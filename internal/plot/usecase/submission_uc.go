package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/muthomi-ke/land-platform/internal/platform/logger"
	"github.com/muthomi-ke/land-platform/internal/plot/domain"
)

// MaxImages caps the number of photos attached to one submission. Extra
// selections beyond the cap are dropped, keeping the first ones picked.
const MaxImages = 10

const submitTimeout = 60 * time.Second

// Storage uploads a blob and returns its durable public URL.
type Storage interface {
	Upload(ctx context.Context, fileName string, data []byte) (string, error)
}

// Publisher emits domain events. Best-effort; callers swallow its errors.
type Publisher interface {
	Publish(ctx context.Context, subject string, data interface{}) error
}

// SubmissionMailer notifies the seller that their listing was received.
type SubmissionMailer interface {
	SendSubmissionReceivedEmail(toEmail, parcelName string) error
}

const SubjectPlotCreated = "plots.created"

type Step int

const (
	StepSellerInfo Step = iota + 1
	StepPropertyDetails
	StepMedia
)

type Status int

const (
	StatusEditing Status = iota
	StatusSubmitting
	StatusSuccess
	StatusFailed
)

// MediaFile is a selected local file, held in memory until final submit.
type MediaFile struct {
	Name string
	Data []byte
}

// Draft is the in-progress wizard state. It lives entirely in memory until
// the final commit and is discarded only on success.
type Draft struct {
	SellerType domain.SellerType
	AgencyName string
	OwnerName  string
	OwnerEmail string
	OwnerPhone string

	ParcelName        string
	Location          string
	Size              string
	Price             string
	Description       string
	Category          domain.Category
	NeighborhoodScore int
	Latitude          *float64
	Longitude         *float64

	Images        []MediaFile
	Video         *MediaFile
	AerialViewURL string
}

func newDraft() Draft {
	return Draft{
		SellerType:        domain.SellerOwner,
		Category:          domain.CategoryResidential,
		NeighborhoodScore: 7,
	}
}

// SubmissionUsecase owns the external collaborators a wizard needs to
// commit: the plots collection, the media store, the event bus, and mail.
// Any of them except the repository may be nil; missing ones degrade.
type SubmissionUsecase struct {
	repo      domain.PlotRepository
	storage   Storage
	publisher Publisher
	mailer    SubmissionMailer
	logger    *logger.Logger
}

func NewSubmissionUsecase(repo domain.PlotRepository, storage Storage, publisher Publisher, mailer SubmissionMailer, log *logger.Logger) *SubmissionUsecase {
	return &SubmissionUsecase{
		repo:      repo,
		storage:   storage,
		publisher: publisher,
		mailer:    mailer,
		logger:    log,
	}
}

// NewSubmission starts an empty wizard.
func (uc *SubmissionUsecase) NewSubmission() *Submission {
	return &Submission{uc: uc, step: StepSellerInfo, draft: newDraft()}
}

// Submission is one pass through the seller wizard:
//
//	StepSellerInfo -> StepPropertyDetails -> StepMedia -> Submitting -> Success | Failed
//
// Forward transitions are gated by stage-local validation; backward
// transitions are always permitted and clear the displayed error.
type Submission struct {
	uc     *SubmissionUsecase
	step   Step
	status Status
	draft  Draft
	errMsg string
}

func (s *Submission) Step() Step       { return s.step }
func (s *Submission) Status() Status   { return s.status }
func (s *Submission) Error() string    { return s.errMsg }
func (s *Submission) Draft() *Draft    { return &s.draft }

// SetField applies a named text-input change, mirroring the form. Price gets
// live thousands-separator formatting; everything else is stored as typed.
func (s *Submission) SetField(name, value string) {
	switch name {
	case "sellerType":
		if value == string(domain.SellerBroker) {
			s.draft.SellerType = domain.SellerBroker
		} else {
			s.draft.SellerType = domain.SellerOwner
		}
	case "agencyName":
		s.draft.AgencyName = value
	case "ownerName":
		s.draft.OwnerName = value
	case "ownerEmail":
		s.draft.OwnerEmail = value
	case "ownerPhone":
		s.draft.OwnerPhone = value
	case "parcelName":
		s.draft.ParcelName = value
	case "location":
		s.draft.Location = value
	case "size":
		s.draft.Size = value
	case "price":
		if PriceUnset(value) {
			s.draft.Price = value
		} else {
			s.draft.Price = FormatPrice(value)
		}
	case "description":
		s.draft.Description = value
	case "aerialViewUrl":
		s.draft.AerialViewURL = value
	case "category":
		if domain.ValidCategory(domain.Category(value)) {
			s.draft.Category = domain.Category(value)
		}
	}
}

// PickLocation records a map click. One action mutates two fields: the
// coordinates and the searchable location text, which downstream search
// matches as a substring.
func (s *Submission) PickLocation(lat, lng float64) {
	s.draft.Latitude = &lat
	s.draft.Longitude = &lng
	s.draft.Location = fmt.Sprintf("%.4f, %.4f", lat, lng)
}

// SelectImages appends the chosen files, keeping at most MaxImages in
// selection order.
func (s *Submission) SelectImages(files []MediaFile) {
	s.draft.Images = append(s.draft.Images, files...)
	if len(s.draft.Images) > MaxImages {
		s.draft.Images = s.draft.Images[:MaxImages]
	}
}

// RemoveImage drops the i-th selected file.
func (s *Submission) RemoveImage(i int) {
	if i < 0 || i >= len(s.draft.Images) {
		return
	}
	s.draft.Images = append(s.draft.Images[:i], s.draft.Images[i+1:]...)
}

// SelectVideo attaches the single optional video file.
func (s *Submission) SelectVideo(file MediaFile) {
	s.draft.Video = &file
}

// Next validates the current step and advances on success. On failure the
// step does not change and exactly one message, the first failing rule in
// form order, is surfaced.
func (s *Submission) Next() bool {
	if msg := s.uc.ValidateStep(s.step, &s.draft); msg != "" {
		s.errMsg = msg
		return false
	}
	s.errMsg = ""
	if s.step < StepMedia {
		s.step++
	}
	return true
}

// Back moves to the previous step unconditionally and clears any error.
func (s *Submission) Back() {
	if s.step > StepSellerInfo {
		s.step--
	}
	s.errMsg = ""
}

// Submit validates the media step, uploads all selected files, then creates
// the plot record. Uploads run concurrently but the whole set must succeed
// before the insert is issued; any upload failure aborts the commit and
// already-uploaded files are logged as orphans, not cleaned up. The draft
// survives failure so the seller can retry; only Success resets it.
func (s *Submission) Submit(ctx context.Context) (*domain.Plot, error) {
	if msg := s.uc.ValidateStep(StepMedia, &s.draft); msg != "" {
		s.errMsg = msg
		return nil, domain.ErrInvalidPlotData
	}
	s.errMsg = ""
	s.status = StatusSubmitting

	plot, err := s.uc.commit(ctx, &s.draft)
	if err != nil {
		s.status = StatusFailed
		s.errMsg = "An error occurred while submitting the form"
		return nil, err
	}

	s.status = StatusSuccess
	s.draft = newDraft()
	return plot, nil
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[+]?[0-9\s-]{10,15}$`)
)

// ValidateStep checks one stage's rules in form field order and returns the
// first failing rule's message, or "" when the stage passes.
func (uc *SubmissionUsecase) ValidateStep(step Step, d *Draft) string {
	switch step {
	case StepSellerInfo:
		if strings.TrimSpace(d.OwnerName) == "" {
			return "Owner name is required"
		}
		if strings.TrimSpace(d.OwnerEmail) == "" {
			return "Email is required"
		}
		if !emailPattern.MatchString(d.OwnerEmail) {
			return "Please enter a valid email address"
		}
		if strings.TrimSpace(d.OwnerPhone) == "" {
			return "Phone number is required"
		}
		if !phonePattern.MatchString(d.OwnerPhone) {
			return "Please enter a valid phone number"
		}
		if d.SellerType == domain.SellerBroker && strings.TrimSpace(d.AgencyName) == "" {
			return "Agency name is required for brokers"
		}

	case StepPropertyDetails:
		if strings.TrimSpace(d.ParcelName) == "" {
			return "Parcel name is required"
		}
		if strings.TrimSpace(d.Location) == "" {
			return "Please select a location on the map"
		}
		if strings.TrimSpace(d.Size) == "" {
			return "Size is required"
		}
		if strings.TrimSpace(d.Price) == "" {
			return "Price is required"
		}
		// "TBD" is an accepted sentinel for an unset price (stored as 0);
		// anything else must strip to a strictly positive integer.
		if !PriceUnset(d.Price) && ParsePrice(d.Price) <= 0 {
			return "Please enter a valid price"
		}
		if strings.TrimSpace(d.Description) == "" {
			return "Description is required"
		}

	case StepMedia:
		if len(d.Images) == 0 && d.Video == nil && d.AerialViewURL == "" {
			return "Please upload at least one photo or provide an aerial view URL"
		}
	}
	return ""
}

// commit uploads the draft's media and inserts a single plot record. Image
// URLs keep selection order regardless of which upload finishes first, so
// the hero is deterministically the first image picked.
func (uc *SubmissionUsecase) commit(ctx context.Context, d *Draft) (*domain.Plot, error) {
	if uc.repo == nil {
		return nil, domain.ErrGatewayNotConfigured
	}
	if uc.storage == nil && (len(d.Images) > 0 || d.Video != nil) {
		return nil, domain.ErrMediaNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, submitTimeout)
	defer cancel()

	imageURLs := make([]string, len(d.Images))
	var videoURL string

	g, gctx := errgroup.WithContext(ctx)
	for i := range d.Images {
		i := i
		g.Go(func() error {
			url, err := uc.storage.Upload(gctx, d.Images[i].Name, d.Images[i].Data)
			if err != nil {
				return fmt.Errorf("upload %s: %w", d.Images[i].Name, err)
			}
			imageURLs[i] = url
			return nil
		})
	}
	if d.Video != nil {
		g.Go(func() error {
			url, err := uc.storage.Upload(gctx, d.Video.Name, d.Video.Data)
			if err != nil {
				return fmt.Errorf("upload %s: %w", d.Video.Name, err)
			}
			videoURL = url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		// There is no transaction spanning the media store and the data
		// gateway: whatever did upload stays behind for manual cleanup.
		for _, url := range imageURLs {
			if url != "" {
				uc.logger.Warn("SubmissionUsecase.commit: orphaned upload, needs manual cleanup", "url", url)
			}
		}
		if videoURL != "" {
			uc.logger.Warn("SubmissionUsecase.commit: orphaned upload, needs manual cleanup", "url", videoURL)
		}
		uc.logger.Error("SubmissionUsecase.commit: media upload failed, aborting", "error", err.Error())
		return nil, err
	}

	mediaURLs := append([]string{}, imageURLs...)
	if videoURL != "" {
		mediaURLs = append(mediaURLs, videoURL)
	}

	agency := ""
	if d.SellerType == domain.SellerBroker {
		agency = d.AgencyName
	}

	plot := &domain.Plot{
		Name:              d.ParcelName,
		Location:          d.Location,
		Latitude:          d.Latitude,
		Longitude:         d.Longitude,
		Size:              d.Size,
		Price:             ParsePrice(d.Price),
		Category:          d.Category,
		Tag:               "New submission",
		Description:       d.Description,
		NeighborhoodScore: d.NeighborhoodScore,
		MediaURLs:         mediaURLs,
		AerialViewURL:     d.AerialViewURL,
		OwnerName:         d.OwnerName,
		OwnerEmail:        d.OwnerEmail,
		OwnerPhone:        d.OwnerPhone,
		SellerType:        d.SellerType,
		AgencyName:        agency,
		Verified:          false,
	}
	if err := uc.repo.Create(ctx, plot); err != nil {
		uc.logger.Error("SubmissionUsecase.commit: insert failed", "error", err.Error())
		return nil, err
	}

	uc.logger.Info("SubmissionUsecase.commit: plot created", "plot_id", plot.ID, "media_count", len(mediaURLs))

	if uc.publisher != nil {
		if err := uc.publisher.Publish(ctx, SubjectPlotCreated, plot); err != nil {
			uc.logger.Warn("SubmissionUsecase.commit: event publish failed", "error", err.Error())
		}
	}
	if uc.mailer != nil {
		if err := uc.mailer.SendSubmissionReceivedEmail(d.OwnerEmail, d.ParcelName); err != nil {
			uc.logger.Warn("SubmissionUsecase.commit: confirmation email failed", "error", err.Error())
		}
	}

	return plot, nil
}
