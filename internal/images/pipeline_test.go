package images_test

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"testing"
	"time"

	"github.com/dealersync/dealersync/internal/images"
	"github.com/dealersync/dealersync/internal/images/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testConfig = images.Config{
	Width:     640,
	Height:    480,
	Quality:   80,
	MaxImages: 10,
	Workers:   4,
	Timeout:   5 * time.Second,
}

func TestUnitProcess(t *testing.T) {
	slug := "bmw-320d-2021-abcd1234"
	urls := sourceURLs(3)

	fetcher := mocks.NewFetcher(t)
	uploader := mocks.NewUploader(t)

	for _, url := range urls {
		mockFetchImage(fetcher, url, nil)
	}
	for ix := range urls {
		mockUpload(t, uploader, fmt.Sprintf("%s/%d.jpg", slug, ix), nil)
	}

	pipe := images.NewPipeline(fetcher, uploader, testConfig, testLogger())
	refs, errs := pipe.Process(context.TODO(), slug, urls)

	require.Empty(t, errs, "shouldn't report any image error")
	assert.Equal(t, []string{
		"https://cdn.test/" + slug + "/0.jpg",
		"https://cdn.test/" + slug + "/1.jpg",
		"https://cdn.test/" + slug + "/2.jpg",
	}, refs, "should keep source presentation order")
}

func TestUnitProcessCapAndPartialFailure(t *testing.T) {
	slug := "vw-golf-2019-abcd1234"
	urls := sourceURLs(15)

	fetcher := mocks.NewFetcher(t)
	uploader := mocks.NewUploader(t)

	// only the first 10 images may be attempted; image #4 fails mid-pipeline
	for ix, url := range urls[:10] {
		if ix == 3 {
			mockFetchImage(fetcher, url, assert.AnError)
			continue
		}
		mockFetchImage(fetcher, url, nil)
		mockUpload(t, uploader, fmt.Sprintf("%s/%d.jpg", slug, ix), nil)
	}

	pipe := images.NewPipeline(fetcher, uploader, testConfig, testLogger())
	refs, errs := pipe.Process(context.TODO(), slug, urls)

	require.Len(t, errs, 1, "should report exactly one image error")
	require.ErrorIs(t, errs[0], assert.AnError, "should wrap the fetch error")

	wantRefs := make([]string, 0, 9)
	for ix := 0; ix < 10; ix++ {
		if ix == 3 {
			continue
		}
		wantRefs = append(wantRefs, fmt.Sprintf("https://cdn.test/%s/%d.jpg", slug, ix))
	}
	assert.Equal(t, wantRefs, refs, "failed image should be skipped, order of the rest preserved")
}

func TestUnitProcessAllImagesFail(t *testing.T) {
	slug := "audi-a4-2018-abcd1234"
	urls := sourceURLs(4)

	fetcher := mocks.NewFetcher(t)
	uploader := mocks.NewUploader(t)

	for _, url := range urls {
		mockFetchImage(fetcher, url, assert.AnError)
	}

	pipe := images.NewPipeline(fetcher, uploader, testConfig, testLogger())
	refs, errs := pipe.Process(context.TODO(), slug, urls)

	assert.Empty(t, refs, "zero successful images is a valid outcome")
	assert.Len(t, errs, len(urls), "every failure should be reported")
}

func TestUnitProcessUploadError(t *testing.T) {
	slug := "seat-leon-2020-abcd1234"
	urls := sourceURLs(1)

	fetcher := mocks.NewFetcher(t)
	uploader := mocks.NewUploader(t)

	mockFetchImage(fetcher, urls[0], nil)
	mockUpload(t, uploader, slug+"/0.jpg", assert.AnError)

	pipe := images.NewPipeline(fetcher, uploader, testConfig, testLogger())
	refs, errs := pipe.Process(context.TODO(), slug, urls)

	assert.Empty(t, refs, "failed upload shouldn't produce a reference")
	require.Len(t, errs, 1, "should report the upload error")
	require.ErrorContains(t, errs[0], "can't upload image", "should wrap the upload error")
}

func sourceURLs(count int) []string {
	urls := make([]string, 0, count)
	for ix := 0; ix < count; ix++ {
		urls = append(urls, fmt.Sprintf("https://dealer.test/images/%d.jpg", ix))
	}

	return urls
}

func mockFetchImage(fetcher *mocks.Fetcher, url string, err error) {
	if err != nil {
		fetcher.On("FetchImage", mock.Anything, url).Return(nil, err)
		return
	}

	fetcher.On("FetchImage", mock.Anything, url).
		Return(func(context.Context, string) (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(sourceJPEG())), nil
		})
}

func mockUpload(t *testing.T, uploader *mocks.Uploader, path string, err error) {
	t.Helper()

	if err != nil {
		uploader.On("Upload", mock.Anything, path, mock.Anything, "image/jpeg").Return("", err)
		return
	}

	uploader.On("Upload", mock.Anything, path, mock.Anything, "image/jpeg").
		Return(func(_ context.Context, path string, body []byte, _ string) (string, error) {
			cfg, err := jpeg.DecodeConfig(bytes.NewReader(body))
			require.NoError(t, err, "uploaded body should be a decodable jpeg")
			assert.Equal(t, testConfig.Width, cfg.Width, "uploaded image should match target width")
			assert.Equal(t, testConfig.Height, cfg.Height, "uploaded image should match target height")

			return "https://cdn.test/" + path, nil
		})
}

func sourceJPEG() []byte {
	img := image.NewRGBA(image.Rect(0, 0, 800, 600))
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		panic(err)
	}

	return buf.Bytes()
}

func testLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}
