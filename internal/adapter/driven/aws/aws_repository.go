package aws

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/skytrade/uav-volume-dashboard-go/internal/domain/repository"
	"github.com/skytrade/uav-volume-dashboard-go/internal/shared/types"
)

// ObjectPutter is the subset of the S3 client used for publishing.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// IdentityGetter is the subset of the STS client used for publishing.
type IdentityGetter interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

var contentTypes = map[string]string{
	".csv":  "text/csv",
	".json": "application/json",
	".pdf":  "application/pdf",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// AWSRepositoryImpl implementa o PublishRepository com cache de configuração.
type AWSRepositoryImpl struct {
	cfgCache map[string]aws.Config
	mu       sync.Mutex

	loadConfig func(ctx context.Context, profile, region string) (aws.Config, error)
	newS3      func(aws.Config) ObjectPutter
	newSTS     func(aws.Config) IdentityGetter
}

// NewAWSRepository cria uma nova implementação do PublishRepository.
func NewAWSRepository() repository.PublishRepository {
	return &AWSRepositoryImpl{
		cfgCache:   make(map[string]aws.Config),
		loadConfig: loadDefaultConfig,
		newS3:      func(cfg aws.Config) ObjectPutter { return s3.NewFromConfig(cfg) },
		newSTS:     func(cfg aws.Config) IdentityGetter { return sts.NewFromConfig(cfg) },
	}
}

// NewAWSRepositoryWithClients builds a repository around preconfigured
// clients. No shared AWS configuration is read.
func NewAWSRepositoryWithClients(objects ObjectPutter, identity IdentityGetter) *AWSRepositoryImpl {
	return &AWSRepositoryImpl{
		cfgCache: make(map[string]aws.Config),
		loadConfig: func(_ context.Context, _, region string) (aws.Config, error) {
			return aws.Config{Region: region}, nil
		},
		newS3:  func(aws.Config) ObjectPutter { return objects },
		newSTS: func(aws.Config) IdentityGetter { return identity },
	}
}

func loadDefaultConfig(ctx context.Context, profile, region string) (aws.Config, error) {
	var opts []func(*config.LoadOptions) error
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	return config.LoadDefaultConfig(ctx, opts...)
}

func (r *AWSRepositoryImpl) getAWSConfig(ctx context.Context, profile, region string) (aws.Config, error) {
	cacheKey := profile + "|" + region

	r.mu.Lock()
	defer r.mu.Unlock()

	if cfg, ok := r.cfgCache[cacheKey]; ok {
		return cfg, nil
	}

	cfg, err := r.loadConfig(ctx, profile, region)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config for profile %s: %w", profileName(profile), err)
	}

	r.cfgCache[cacheKey] = cfg
	return cfg, nil
}

// GetAWSProfiles lists the profiles found in the shared credentials and
// config files.
func (r *AWSRepositoryImpl) GetAWSProfiles() []string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return []string{"default"}
	}

	profiles := make(map[string]bool)
	profileRegex := regexp.MustCompile(`\[([^]]+)\]`)

	parseFile := func(file string, isConfig bool) {
		content, err := os.ReadFile(file)
		if err != nil {
			return
		}
		for _, match := range profileRegex.FindAllStringSubmatch(string(content), -1) {
			name := match[1]
			if isConfig {
				name = strings.TrimPrefix(name, "profile ")
			}
			profiles[name] = true
		}
	}

	parseFile(filepath.Join(homeDir, ".aws", "credentials"), false)
	parseFile(filepath.Join(homeDir, ".aws", "config"), true)

	if len(profiles) == 0 {
		profiles["default"] = true
	}

	result := make([]string, 0, len(profiles))
	for profile := range profiles {
		result = append(result, profile)
	}
	sort.Strings(result)
	return result
}

func (r *AWSRepositoryImpl) GetAccountID(ctx context.Context, profile, region string) (string, error) {
	cfg, err := r.getAWSConfig(ctx, profile, region)
	if err != nil {
		return "", err
	}

	result, err := r.newSTS(cfg).GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("error getting account ID for profile %s: %w", profileName(profile), err)
	}
	return aws.ToString(result.Account), nil
}

// Publish uploads every file as s3://<bucket>/<prefix>/<runID>/<name>. The
// run ID and caller account are stored as object metadata.
func (r *AWSRepositoryImpl) Publish(ctx context.Context, target types.PublishConfig, runID string, files []string) ([]string, error) {
	if target.Bucket == "" {
		return nil, types.ErrNoBucket
	}

	cfg, err := r.getAWSConfig(ctx, target.Profile, target.Region)
	if err != nil {
		return nil, err
	}

	account, err := r.GetAccountID(ctx, target.Profile, target.Region)
	if err != nil {
		return nil, err
	}

	client := r.newS3(cfg)
	uris := make([]string, 0, len(files))
	for _, file := range files {
		key := ObjectKey(target.Prefix, runID, file)
		if err := putFile(ctx, client, target.Bucket, key, file, map[string]string{
			"run-id":     runID,
			"account-id": account,
		}); err != nil {
			return uris, err
		}
		uris = append(uris, fmt.Sprintf("s3://%s/%s", target.Bucket, key))
	}
	return uris, nil
}

// ObjectKey builds the object key for a file of a run.
func ObjectKey(prefix, runID, file string) string {
	return path.Join(strings.Trim(prefix, "/"), runID, filepath.Base(file))
}

func putFile(ctx context.Context, client ObjectPutter, bucket, key, file string, metadata map[string]string) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("error opening %s for upload: %w", file, err)
	}
	defer f.Close()

	contentType, ok := contentTypes[strings.ToLower(filepath.Ext(file))]
	if !ok {
		contentType = "application/octet-stream"
	}

	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String(contentType),
		Metadata:    metadata,
	})
	if err != nil {
		return fmt.Errorf("error uploading %s to s3://%s/%s: %w", filepath.Base(file), bucket, key, err)
	}
	return nil
}

func profileName(profile string) string {
	if profile == "" {
		return "default"
	}
	return profile
}
