package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"wingman_admin/internal/config"
	"wingman_admin/internal/model"
)

const (
	exportFolder       = "exports"
	contentTypeCSV     = "text/csv"
	exportCacheControl = "private, max-age=0"
)

// Service renders dashboard snapshots as CSV and uploads them to R2.
type Service struct {
	s3Client  *s3.Client
	bucket    string
	publicURL string
}

// NewService constructs an S3-compatible client for Cloudflare R2.
func NewService(ctx context.Context, cfg *config.Config) (*Service, error) {
	if cfg.R2AccountID == "" || cfg.R2AccessKeyID == "" || cfg.R2SecretAccessKey == "" || cfg.R2BucketName == "" || cfg.R2PublicURL == "" {
		return nil, fmt.Errorf("missing Cloudflare R2 configuration")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(
		ctx,
		awsconfig.WithRegion("auto"),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.R2AccessKeyID, cfg.R2SecretAccessKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config for R2: %w", err)
	}

	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.R2AccountID)
	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	return &Service{
		s3Client:  s3Client,
		bucket:    cfg.R2BucketName,
		publicURL: strings.TrimSuffix(cfg.R2PublicURL, "/"),
	}, nil
}

// ExportUsers uploads the current user snapshot as CSV.
func (s *Service) ExportUsers(ctx context.Context, users []model.User) (*model.ExportResult, error) {
	body, err := usersCSV(users)
	if err != nil {
		return nil, err
	}
	return s.upload(ctx, model.KindUsers, body)
}

// ExportVideos uploads the current video snapshot as CSV.
func (s *Service) ExportVideos(ctx context.Context, videos []model.Video) (*model.ExportResult, error) {
	body, err := videosCSV(videos)
	if err != nil {
		return nil, err
	}
	return s.upload(ctx, model.KindVideos, body)
}

func (s *Service) upload(ctx context.Context, kind model.Kind, body []byte) (*model.ExportResult, error) {
	key := fmt.Sprintf("%s/%s-%s.csv", exportFolder, kind, uuid.NewString())

	_, err := s.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(body),
		ContentType:  aws.String(contentTypeCSV),
		CacheControl: aws.String(exportCacheControl),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to r2: %w", err)
	}

	url := fmt.Sprintf("%s/%s", s.publicURL, key)
	return &model.ExportResult{URL: url, Key: key}, nil
}

func usersCSV(users []model.User) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"id", "name", "email", "tier", "active", "totalXP", "rizzLevel", "streak", "goal", "createdAt"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, u := range users {
		row := []string{
			u.ID,
			u.Name,
			u.Email,
			u.Tier(),
			strconv.FormatBool(u.IsActive),
			strconv.Itoa(u.TotalXP),
			strconv.Itoa(u.RizzLevel),
			strconv.Itoa(u.StreakCount),
			u.UserGoal,
			formatTime(u.CreatedAt),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func videosCSV(videos []model.Video) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"id", "title", "platform", "category", "views", "likes", "active", "videoUrl"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, v := range videos {
		row := []string{
			v.ID,
			v.Title,
			v.Platform,
			v.Category.CategoryID(),
			strconv.Itoa(v.Views),
			strconv.Itoa(v.Likes),
			strconv.FormatBool(v.Active()),
			v.VideoURL,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
