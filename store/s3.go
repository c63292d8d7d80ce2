package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/ioutil"
	"net"
	"net/http"
	"path"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	hostpool "github.com/bitly/go-hostpool"
	"github.com/garyhouston/exifdir"
)

const (
	CONTIMEOUT = 2000  // connection timeout in ms
	KEEPALIVE  = 15000 // keep alive in ms
)

type S3Config struct {
	// Several endpoints of the same object store; requests are spread
	// over them, avoiding those that fail.
	Endpoints       []string
	Region          string
	Bucket          string
	Prefix          string
	AccessKeyID     string
	SecretAccessKey string
	MaxRetries      int
	// Timeout of a whole request, 0 for none.
	Timeout time.Duration
}

// S3Store keeps serialized Directories as objects in an S3 bucket.
type S3Store struct {
	pool    hostpool.HostPool
	clients map[string]s3iface.S3API
	bucket  string
	prefix  string
}

func NewS3Store(cfg S3Config) (*S3Store, error) {
	if len(cfg.Endpoints) == 0 {
		return nil, errors.New("store: no S3 endpoint configured")
	}
	if cfg.Bucket == "" {
		return nil, errors.New("store: no S3 bucket configured")
	}
	maxRetries := 5
	if cfg.MaxRetries > 0 {
		maxRetries = cfg.MaxRetries
	}
	client := &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   CONTIMEOUT * time.Millisecond,
				KeepAlive: KEEPALIVE * time.Millisecond,
			}).DialContext,
			TLSHandshakeTimeout:   10 * time.Second,
			ForceAttemptHTTP2:     true,
			MaxIdleConns:          100,
			IdleConnTimeout:       90 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
		},
	}
	clients := make(map[string]s3iface.S3API, len(cfg.Endpoints))
	for _, endpoint := range cfg.Endpoints {
		sess, err := session.NewSession(&aws.Config{
			Region:                         aws.String(cfg.Region),
			Endpoint:                       aws.String(endpoint),
			Credentials:                    credentials.NewStaticCredentials(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
			DisableRestProtocolURICleaning: aws.Bool(true),
			S3ForcePathStyle:               aws.Bool(true),
			MaxRetries:                     aws.Int(maxRetries),
			HTTPClient:                     client,
		})
		if err != nil {
			return nil, fmt.Errorf("store: S3 session for %s: %w", endpoint, err)
		}
		clients[endpoint] = s3.New(sess)
	}
	return newS3Store(clients, cfg.Bucket, cfg.Prefix), nil
}

func newS3Store(clients map[string]s3iface.S3API, bucket, prefix string) *S3Store {
	hosts := make([]string, 0, len(clients))
	for host := range clients {
		hosts = append(hosts, host)
	}
	return &S3Store{
		pool:    hostpool.NewEpsilonGreedy(hosts, 0, &hostpool.LinearEpsilonValueCalculator{}),
		clients: clients,
		bucket:  bucket,
		prefix:  prefix,
	}
}

func (s *S3Store) objectKey(key string) string {
	if s.prefix == "" {
		return key
	}
	return path.Join(s.prefix, key)
}

// Run op against the endpoints chosen by the host pool, moving on to
// another endpoint while the failure is the endpoint's rather than the
// request's.
func (s *S3Store) do(ctx context.Context, name, key string, op func(svc s3iface.S3API) error) error {
	var err error
	for r := 1; r <= len(s.clients); r++ {
		hpool := s.pool.Get()
		host := hpool.Host()
		start := time.Now()
		err = op(s.clients[host])
		if !endpointFailure(err) {
			hpool.Mark(nil)
			tracef("%s %s/%s on %s: %v in %s", name, s.bucket, key, host, err, time.Since(start))
			return err
		}
		hpool.Mark(err)
		errorf("Retry=%d, %s %s/%s on %s: %v", r, name, s.bucket, key, host, err)
		if ctx.Err() != nil {
			break
		}
	}
	return err
}

// Report whether err suggests that the endpoint, not the request, is at
// fault.
func endpointFailure(err error) bool {
	if err == nil {
		return false
	}
	var reqErr awserr.RequestFailure
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode() >= 500
	}
	return true
}

func notFound(err error) bool {
	var awsErr awserr.Error
	if errors.As(err, &awsErr) {
		switch awsErr.Code() {
		case s3.ErrCodeNoSuchKey, "NotFound":
			return true
		}
	}
	return false
}

func (s *S3Store) Get(ctx context.Context, key string) (*exifdir.Directory, error) {
	var data []byte
	objKey := s.objectKey(key)
	err := s.do(ctx, "GetObject", objKey, func(svc s3iface.S3API) error {
		out, err := svc.GetObjectWithContext(ctx, &s3.GetObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(objKey),
		})
		if err != nil {
			return err
		}
		defer out.Body.Close()
		data, err = ioutil.ReadAll(out.Body)
		return err
	})
	if notFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: get %s: %w", key, err)
	}
	return decode(key, data)
}

func (s *S3Store) Put(ctx context.Context, key string, dir *exifdir.Directory) error {
	data, err := encode(key, dir)
	if err != nil {
		return err
	}
	objKey := s.objectKey(key)
	err = s.do(ctx, "PutObject", objKey, func(svc s3iface.S3API) error {
		_, err := svc.PutObjectWithContext(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(s.bucket),
			Key:         aws.String(objKey),
			Body:        bytes.NewReader(data),
			ContentType: aws.String("application/json"),
		})
		return err
	})
	if err != nil {
		return fmt.Errorf("store: put %s: %w", key, err)
	}
	return nil
}

func (s *S3Store) Delete(ctx context.Context, key string) error {
	objKey := s.objectKey(key)
	err := s.do(ctx, "DeleteObject", objKey, func(svc s3iface.S3API) error {
		_, err := svc.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(objKey),
		})
		return err
	})
	if err != nil && !notFound(err) {
		return fmt.Errorf("store: delete %s: %w", key, err)
	}
	return nil
}

func (s *S3Store) Close() error {
	s.pool.Close()
	return nil
}
