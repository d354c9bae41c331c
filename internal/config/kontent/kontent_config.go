package kontent

// KontentConfig holds the credentials and endpoints of the wrapped
// Kontent.ai environment.
type KontentConfig struct {
	EnvironmentID  string `json:"environmentId" yaml:"environmentId"`
	APIKey         string `json:"apiKey" yaml:"apiKey"`
	ManageAPIURL   string `json:"manageApiUrl,omitempty" yaml:"manageApiUrl,omitempty"`
	DeliveryAPIURL string `json:"deliveryApiUrl,omitempty" yaml:"deliveryApiUrl,omitempty"`
	TimeoutSeconds int    `json:"timeoutSeconds" yaml:"timeoutSeconds"`

	// MaxRetries counts retries after the first attempt; 0 disables them.
	MaxRetries int `json:"maxRetries" yaml:"maxRetries"`
	// MaxRetryWaitSeconds caps each wait between retries, a server's
	// Retry-After included.
	MaxRetryWaitSeconds int `json:"maxRetryWaitSeconds" yaml:"maxRetryWaitSeconds"`

	Headers map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`
}

func DefaultKontentConfig() KontentConfig {
	return KontentConfig{
		ManageAPIURL:        "https://manage.kontent.ai/",
		DeliveryAPIURL:      "https://deliver.kontent.ai/",
		TimeoutSeconds:      30,
		MaxRetries:          3,
		MaxRetryWaitSeconds: 30,
	}
}
