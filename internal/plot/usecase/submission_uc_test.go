package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muthomi-ke/land-platform/internal/platform/logger"
	"github.com/muthomi-ke/land-platform/internal/plot/domain"
)

type plotRepoStub struct {
	domain.PlotRepository
	createErr error
	created   *domain.Plot
}

func (r *plotRepoStub) Create(_ context.Context, plot *domain.Plot) error {
	if r.createErr != nil {
		return r.createErr
	}
	plot.ID = "plot-1"
	r.created = plot
	return nil
}

// storageStub uploads to URLs derived from the file name; names listed in
// failOn fail their upload.
type storageStub struct {
	mu      sync.Mutex
	failOn  map[string]bool
	uploads []string
}

func (s *storageStub) Upload(_ context.Context, fileName string, _ []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failOn[fileName] {
		return "", errors.New("storage unavailable")
	}
	url := "https://media.test/" + fileName
	s.uploads = append(s.uploads, url)
	return url, nil
}

type publisherStub struct {
	mu       sync.Mutex
	subjects []string
}

func (p *publisherStub) Publish(_ context.Context, subject string, _ interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subjects = append(p.subjects, subject)
	return nil
}

type mailerStub struct {
	to     string
	parcel string
}

func (m *mailerStub) SendSubmissionReceivedEmail(toEmail, parcelName string) error {
	m.to = toEmail
	m.parcel = parcelName
	return nil
}

func fillSellerInfo(sub *Submission) {
	sub.SetField("ownerName", "Wanjiku Kamau")
	sub.SetField("ownerEmail", "wanjiku@example.com")
	sub.SetField("ownerPhone", "+254 712 345678")
}

func fillPropertyDetails(sub *Submission) {
	sub.SetField("parcelName", "Kitengela Acre")
	sub.SetField("location", "Kitengela, Kajiado")
	sub.SetField("size", "1 acre")
	sub.SetField("price", "1200000")
	sub.SetField("description", "Flat parcel near the tarmac road")
}

func newTestWizard(repo *plotRepoStub, storage *storageStub) *Submission {
	uc := NewSubmissionUsecase(repo, storage, nil, nil, logger.New())
	return uc.NewSubmission()
}

func TestWizardSellerInfoValidation(t *testing.T) {
	sub := newTestWizard(&plotRepoStub{}, &storageStub{})

	require.False(t, sub.Next())
	assert.Equal(t, "Owner name is required", sub.Error())
	assert.Equal(t, StepSellerInfo, sub.Step())

	sub.SetField("ownerName", "Wanjiku Kamau")
	sub.SetField("ownerEmail", "not-an-email")
	sub.SetField("ownerPhone", "+254 712 345678")
	require.False(t, sub.Next())
	assert.Equal(t, "Please enter a valid email address", sub.Error())

	sub.SetField("ownerEmail", "a@b.com")
	require.True(t, sub.Next())
	assert.Empty(t, sub.Error())
	assert.Equal(t, StepPropertyDetails, sub.Step())
}

func TestWizardBrokerRequiresAgency(t *testing.T) {
	sub := newTestWizard(&plotRepoStub{}, &storageStub{})
	fillSellerInfo(sub)
	sub.SetField("sellerType", string(domain.SellerBroker))

	require.False(t, sub.Next())
	assert.Equal(t, "Agency name is required for brokers", sub.Error())

	sub.SetField("agencyName", "Acme Realty")
	assert.True(t, sub.Next())
}

func TestWizardPhoneValidation(t *testing.T) {
	sub := newTestWizard(&plotRepoStub{}, &storageStub{})
	sub.SetField("ownerName", "Wanjiku Kamau")
	sub.SetField("ownerEmail", "a@b.com")
	sub.SetField("ownerPhone", "12345")

	require.False(t, sub.Next())
	assert.Equal(t, "Please enter a valid phone number", sub.Error())
}

func TestWizardTBDPricePassesValidation(t *testing.T) {
	sub := newTestWizard(&plotRepoStub{}, &storageStub{})
	fillSellerInfo(sub)
	require.True(t, sub.Next())

	fillPropertyDetails(sub)
	sub.SetField("price", "TBD")
	assert.True(t, sub.Next(), "TBD is an accepted unset-price sentinel: %s", sub.Error())
}

func TestWizardRejectsZeroNumericPrice(t *testing.T) {
	sub := newTestWizard(&plotRepoStub{}, &storageStub{})
	fillSellerInfo(sub)
	require.True(t, sub.Next())

	fillPropertyDetails(sub)
	sub.SetField("price", "0")
	require.False(t, sub.Next())
	assert.Equal(t, "Please enter a valid price", sub.Error())
}

func TestWizardPriceFormatsAsTyped(t *testing.T) {
	sub := newTestWizard(&plotRepoStub{}, &storageStub{})
	sub.SetField("price", "1234567")
	assert.Equal(t, "1,234,567", sub.Draft().Price)

	sub.SetField("price", "TBD")
	assert.Equal(t, "TBD", sub.Draft().Price)
}

func TestWizardBackClearsError(t *testing.T) {
	sub := newTestWizard(&plotRepoStub{}, &storageStub{})
	fillSellerInfo(sub)
	require.True(t, sub.Next())

	require.False(t, sub.Next())
	require.NotEmpty(t, sub.Error())

	sub.Back()
	assert.Empty(t, sub.Error())
	assert.Equal(t, StepSellerInfo, sub.Step())
}

func TestWizardImageCap(t *testing.T) {
	sub := newTestWizard(&plotRepoStub{}, &storageStub{})

	files := make([]MediaFile, 12)
	for i := range files {
		files[i] = MediaFile{Name: fmt.Sprintf("photo-%02d.jpg", i)}
	}
	sub.SelectImages(files)

	require.Len(t, sub.Draft().Images, MaxImages)
	for i := 0; i < MaxImages; i++ {
		assert.Equal(t, fmt.Sprintf("photo-%02d.jpg", i), sub.Draft().Images[i].Name, "cap must keep selection order")
	}
}

func TestWizardRemoveImage(t *testing.T) {
	sub := newTestWizard(&plotRepoStub{}, &storageStub{})
	sub.SelectImages([]MediaFile{{Name: "a.jpg"}, {Name: "b.jpg"}, {Name: "c.jpg"}})

	sub.RemoveImage(1)
	require.Len(t, sub.Draft().Images, 2)
	assert.Equal(t, "a.jpg", sub.Draft().Images[0].Name)
	assert.Equal(t, "c.jpg", sub.Draft().Images[1].Name)

	sub.RemoveImage(99) // out of range is a no-op
	assert.Len(t, sub.Draft().Images, 2)
}

func TestSubmitRequiresMedia(t *testing.T) {
	sub := newTestWizard(&plotRepoStub{}, &storageStub{})
	fillSellerInfo(sub)
	require.True(t, sub.Next())
	fillPropertyDetails(sub)
	require.True(t, sub.Next())

	_, err := sub.Submit(context.Background())
	assert.ErrorIs(t, err, domain.ErrInvalidPlotData)
	assert.Equal(t, "Please upload at least one photo or provide an aerial view URL", sub.Error())
}

func TestSubmitAerialViewOnlyIsEnough(t *testing.T) {
	repo := &plotRepoStub{}
	sub := newTestWizard(repo, &storageStub{})
	fillSellerInfo(sub)
	require.True(t, sub.Next())
	fillPropertyDetails(sub)
	sub.SetField("aerialViewUrl", "https://maps.example.com/view/123")
	require.True(t, sub.Next())

	plot, err := sub.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://maps.example.com/view/123", plot.AerialViewURL)
	assert.Empty(t, plot.MediaURLs)
}

func TestSubmitCreatesSinglePlotRecord(t *testing.T) {
	repo := &plotRepoStub{}
	storage := &storageStub{}
	publisher := &publisherStub{}
	mail := &mailerStub{}
	uc := NewSubmissionUsecase(repo, storage, publisher, mail, logger.New())

	sub := uc.NewSubmission()
	fillSellerInfo(sub)
	require.True(t, sub.Next())
	fillPropertyDetails(sub)
	sub.PickLocation(-1.4681, 36.9570)
	require.True(t, sub.Next())
	sub.SelectImages([]MediaFile{
		{Name: "front.jpg", Data: []byte("1")},
		{Name: "gate.jpg", Data: []byte("2")},
		{Name: "road.jpg", Data: []byte("3")},
	})
	sub.SelectVideo(MediaFile{Name: "walkthrough.mp4", Data: []byte("4")})

	plot, err := sub.Submit(context.Background())
	require.NoError(t, err)
	require.NotNil(t, repo.created)
	assert.Equal(t, StatusSuccess, sub.Status())

	assert.Equal(t, "plot-1", plot.ID)
	assert.Equal(t, int64(1200000), plot.Price)
	assert.Equal(t, "New submission", plot.Tag)
	assert.False(t, plot.Verified)
	assert.Equal(t, "-1.4681, 36.9570", plot.Location)

	// Image URLs keep selection order so the first photo picked is the hero;
	// the video always comes last.
	require.Len(t, plot.MediaURLs, 4)
	assert.Equal(t, "https://media.test/front.jpg", plot.MediaURLs[0])
	assert.Equal(t, "https://media.test/gate.jpg", plot.MediaURLs[1])
	assert.Equal(t, "https://media.test/road.jpg", plot.MediaURLs[2])
	assert.Equal(t, "https://media.test/walkthrough.mp4", plot.MediaURLs[3])
	assert.Equal(t, "https://media.test/front.jpg", plot.HeroURL())

	assert.Equal(t, []string{SubjectPlotCreated}, publisher.subjects)
	assert.Equal(t, "wanjiku@example.com", mail.to)
	assert.Equal(t, "Kitengela Acre", mail.parcel)

	// Success resets the draft for the next listing.
	assert.Empty(t, sub.Draft().OwnerName)
	assert.Len(t, sub.Draft().Images, 0)
}

func TestSubmitUploadFailureKeepsDraft(t *testing.T) {
	repo := &plotRepoStub{}
	storage := &storageStub{failOn: map[string]bool{"gate.jpg": true}}
	sub := newTestWizard(repo, storage)

	fillSellerInfo(sub)
	require.True(t, sub.Next())
	fillPropertyDetails(sub)
	require.True(t, sub.Next())
	sub.SelectImages([]MediaFile{
		{Name: "front.jpg", Data: []byte("1")},
		{Name: "gate.jpg", Data: []byte("2")},
	})

	_, err := sub.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, StatusFailed, sub.Status())
	assert.Equal(t, "An error occurred while submitting the form", sub.Error())
	assert.Nil(t, repo.created, "no record may be inserted when any upload fails")

	// The draft survives so the seller can retry without retyping.
	assert.Equal(t, "Kitengela Acre", sub.Draft().ParcelName)
	assert.Len(t, sub.Draft().Images, 2)
}

func TestSubmitNotConfigured(t *testing.T) {
	uc := NewSubmissionUsecase(nil, nil, nil, nil, logger.New())
	sub := uc.NewSubmission()
	fillSellerInfo(sub)
	require.True(t, sub.Next())
	fillPropertyDetails(sub)
	sub.SetField("aerialViewUrl", "https://maps.example.com/view/1")
	require.True(t, sub.Next())

	_, err := sub.Submit(context.Background())
	assert.ErrorIs(t, err, domain.ErrGatewayNotConfigured)
}

func TestSubmitMediaStoreNotConfigured(t *testing.T) {
	uc := NewSubmissionUsecase(&plotRepoStub{}, nil, nil, nil, logger.New())
	sub := uc.NewSubmission()
	fillSellerInfo(sub)
	require.True(t, sub.Next())
	fillPropertyDetails(sub)
	require.True(t, sub.Next())
	sub.SelectImages([]MediaFile{{Name: "front.jpg"}})

	_, err := sub.Submit(context.Background())
	assert.ErrorIs(t, err, domain.ErrMediaNotConfigured)
}

func TestSubmitStoresZeroPriceForTBD(t *testing.T) {
	repo := &plotRepoStub{}
	sub := newTestWizard(repo, &storageStub{})
	fillSellerInfo(sub)
	require.True(t, sub.Next())
	fillPropertyDetails(sub)
	sub.SetField("price", "TBD")
	sub.SetField("aerialViewUrl", "https://maps.example.com/view/9")
	require.True(t, sub.Next())

	plot, err := sub.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), plot.Price)
}
