package config

import "time"

type Config struct {
	// ExternalURL is the RainbowCoin website, linked from every document.
	ExternalURL string `mapstructure:"external_url"`
	// PublicURL is the public base URL of this API. Coin images link to it when no bucket is set.
	PublicURL string `mapstructure:"public_url"`

	ColourLoversURL string        `mapstructure:"colourlovers_url"`
	LookupTimeout   time.Duration `mapstructure:"lookup_timeout"`

	FactoryImageURL string `mapstructure:"factory_image_url"`

	// ImageBucket enables uploading coin images to S3.
	ImageBucket       string `mapstructure:"image_bucket"`
	ImageRegion       string `mapstructure:"image_region"`
	ImageObjectPrefix string `mapstructure:"image_object_prefix"`
	// ImagePublicURL overrides the public base URL of uploaded images, e.g. a CDN in front of the bucket.
	ImagePublicURL string `mapstructure:"image_public_url"`
}
