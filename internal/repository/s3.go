package repository

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/AljazOblonsek/portfolio/internal/config"
	"github.com/AljazOblonsek/portfolio/internal/frontmatter"
	"github.com/AljazOblonsek/portfolio/internal/model"
	"github.com/AljazOblonsek/portfolio/internal/render"
)

// S3PostRepository reads post documents from an S3-compatible bucket
// (including R2-style stores via a custom base endpoint). Same read-only
// contract as the filesystem repository: nothing is cached between calls.
type S3PostRepository struct { // implements PostRepository
	client *s3.Client
	bucket string

	baseURL  string
	renderer *render.Renderer
}

func NewS3PostRepository(accessKeyID, accessKeySecret string, s3cfg config.S3Config, baseURL string, renderer *render.Renderer) (*S3PostRepository, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKeyID, accessKeySecret, "")),
		awsconfig.WithRegion(s3cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("initializing S3 client: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if s3cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(s3cfg.Endpoint)
		}
	})

	return &S3PostRepository{
		client:   client,
		bucket:   s3cfg.Bucket,
		baseURL:  baseURL,
		renderer: renderer,
	}, nil
}

func (r *S3PostRepository) ListSummaries() ([]model.PostSummary, error) {
	out, err := r.client.ListObjectsV2(context.Background(), &s3.ListObjectsV2Input{
		Bucket: aws.String(r.bucket),
	})
	if err != nil {
		return nil, fmt.Errorf("listing posts bucket %s: %w", r.bucket, err)
	}

	var posts []model.PostSummary
	for _, obj := range out.Contents {
		key := aws.ToString(obj.Key)
		if key == config.GitkeepFile || !strings.HasSuffix(key, config.PostExt) {
			continue
		}

		id := model.PostID(strings.TrimSuffix(key, config.PostExt))

		doc, err := r.readObject(key)
		if err != nil {
			return nil, fmt.Errorf("reading post %s: %w", id, err)
		}

		meta, body, err := frontmatter.Parse(doc)
		if err != nil {
			return nil, fmt.Errorf("parsing post %s: %w", id, err)
		}

		posts = append(posts, newSummary(id, meta, body))
	}

	sortSummaries(posts)
	repoLogger.Debug().Int("count", len(posts)).Str("bucket", r.bucket).Msg("Listed post summaries")
	return posts, nil
}

func (r *S3PostRepository) GetDetail(id model.PostID) (*model.PostDetail, error) {
	if strings.ContainsAny(string(id), `/\`) || id == "" {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	doc, err := r.readObject(string(id) + config.PostExt)
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("reading post %s: %w", id, err)
	}

	meta, body, err := frontmatter.Parse(doc)
	if err != nil {
		return nil, fmt.Errorf("parsing post %s: %w", id, err)
	}

	body = frontmatter.ReplaceBaseURL(body, r.baseURL)

	return &model.PostDetail{
		PostSummary: newSummary(id, meta, body),
		HTMLContent: template.HTML(r.renderer.Render(body)),
	}, nil
}

func (r *S3PostRepository) readObject(key string) ([]byte, error) {
	out, err := r.client.GetObject(context.Background(), &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	defer out.Body.Close()

	return io.ReadAll(out.Body)
}
