package anticaptcha

// ImageToTextTask recognizes text in an image.
type ImageToTextTask struct {
	Body Image `json:"body"`
	// Phrase requires the answer to contain at least one space.
	Phrase bool `json:"phrase,omitempty"`
	// Case marks the answer as case sensitive.
	Case bool `json:"case,omitempty"`
	// Numeric: 0 no requirements, 1 digits only, 2 letters only.
	Numeric   int    `json:"numeric,omitempty"`
	Math      bool   `json:"math,omitempty"`
	MinLength int    `json:"minLength,omitempty"`
	MaxLength int    `json:"maxLength,omitempty"`
	Comment   string `json:"comment,omitempty"`
	// WebsiteURL only tags the task in spending statistics.
	WebsiteURL string `json:"websiteURL,omitempty"`
	// LanguagePool is "en" (default) or "rn".
	LanguagePool string `json:"languagePool,omitempty"`
}

// ImageToCoordinatesTask returns click coordinates on an image.
type ImageToCoordinatesTask struct {
	Body    Image  `json:"body"`
	Comment string `json:"comment,omitempty"`
	// Mode is "points" (default) or "rectangles".
	Mode       string `json:"mode,omitempty"`
	WebsiteURL string `json:"websiteURL,omitempty"`
}

// RecaptchaV2TaskProxyless solves reCAPTCHA v2 from the provider's own network.
type RecaptchaV2TaskProxyless struct {
	WebsiteURL          string `json:"websiteURL"`
	WebsiteKey          string `json:"websiteKey"`
	RecaptchaDataSValue string `json:"recaptchaDataSValue,omitempty"`
	IsInvisible         bool   `json:"isInvisible,omitempty"`
}

// RecaptchaV2Task solves reCAPTCHA v2 through the caller's proxy.
type RecaptchaV2Task struct {
	WebsiteURL          string `json:"websiteURL"`
	WebsiteKey          string `json:"websiteKey"`
	RecaptchaDataSValue string `json:"recaptchaDataSValue,omitempty"`
	IsInvisible         bool   `json:"isInvisible,omitempty"`
	Proxy
	UserAgent string `json:"userAgent,omitempty"`
	Cookies   string `json:"cookies,omitempty"`
}

// RecaptchaV2EnterpriseTaskProxyless solves reCAPTCHA v2 Enterprise.
type RecaptchaV2EnterpriseTaskProxyless struct {
	WebsiteURL        string         `json:"websiteURL"`
	WebsiteKey        string         `json:"websiteKey"`
	EnterprisePayload map[string]any `json:"enterprisePayload,omitempty"`
	// APIDomain is "www.google.com" or "www.recaptcha.net".
	APIDomain string `json:"apiDomain,omitempty"`
}

// RecaptchaV2EnterpriseTask solves reCAPTCHA v2 Enterprise through the caller's proxy.
type RecaptchaV2EnterpriseTask struct {
	WebsiteURL        string         `json:"websiteURL"`
	WebsiteKey        string         `json:"websiteKey"`
	EnterprisePayload map[string]any `json:"enterprisePayload,omitempty"`
	APIDomain         string         `json:"apiDomain,omitempty"`
	Proxy
	UserAgent string `json:"userAgent,omitempty"`
	Cookies   string `json:"cookies,omitempty"`
}

// RecaptchaV3TaskProxyless solves reCAPTCHA v3, including Enterprise.
type RecaptchaV3TaskProxyless struct {
	WebsiteURL string `json:"websiteURL"`
	WebsiteKey string `json:"websiteKey"`
	// MinScore is one of 0.3, 0.7, 0.9.
	MinScore     float64 `json:"minScore,omitempty"`
	PageAction   string  `json:"pageAction,omitempty"`
	IsEnterprise bool    `json:"isEnterprise,omitempty"`
	APIDomain    string  `json:"apiDomain,omitempty"`
}

// FunCaptchaTaskProxyless solves Arkose Labs FunCaptcha.
type FunCaptchaTaskProxyless struct {
	WebsiteURL               string `json:"websiteURL"`
	WebsitePublicKey         string `json:"websitePublicKey"`
	FuncaptchaAPIJSSubdomain string `json:"funcaptchaApiJSSubdomain,omitempty"`
	// Data is the "blob" object serialized as a string.
	Data string `json:"data,omitempty"`
}

// FunCaptchaTask solves Arkose Labs FunCaptcha through the caller's proxy.
type FunCaptchaTask struct {
	WebsiteURL               string `json:"websiteURL"`
	WebsitePublicKey         string `json:"websitePublicKey"`
	FuncaptchaAPIJSSubdomain string `json:"funcaptchaApiJSSubdomain,omitempty"`
	Data                     string `json:"data,omitempty"`
	Proxy
	UserAgent string `json:"userAgent,omitempty"`
	Cookies   string `json:"cookies,omitempty"`
}

// GeeTestTaskProxyless solves GeeTest v3 and v4.
type GeeTestTaskProxyless struct {
	WebsiteURL string `json:"websiteURL"`
	GT         string `json:"gt"`
	// Challenge is required for v3 only and must be fresh for every task.
	Challenge                 string `json:"challenge,omitempty"`
	GeetestAPIServerSubdomain string `json:"geetestApiServerSubdomain,omitempty"`
	GeetestGetLib             string `json:"geetestGetLib,omitempty"`
	// Version is 3 (default) or 4.
	Version        int            `json:"version,omitempty"`
	InitParameters map[string]any `json:"initParameters,omitempty"`
}

// GeeTestTask solves GeeTest v3 and v4 through the caller's proxy.
type GeeTestTask struct {
	WebsiteURL                string         `json:"websiteURL"`
	GT                        string         `json:"gt"`
	Challenge                 string         `json:"challenge,omitempty"`
	GeetestAPIServerSubdomain string         `json:"geetestApiServerSubdomain,omitempty"`
	GeetestGetLib             string         `json:"geetestGetLib,omitempty"`
	Version                   int            `json:"version,omitempty"`
	InitParameters            map[string]any `json:"initParameters,omitempty"`
	Proxy
	UserAgent string `json:"userAgent,omitempty"`
	Cookies   string `json:"cookies,omitempty"`
}

// TurnstileTaskProxyless solves Cloudflare Turnstile.
type TurnstileTaskProxyless struct {
	WebsiteURL  string `json:"websiteURL"`
	WebsiteKey  string `json:"websiteKey"`
	Action      string `json:"action,omitempty"`
	CData       string `json:"cData,omitempty"`
	ChlPageData string `json:"chlPageData,omitempty"`
}

// TurnstileTask solves Cloudflare Turnstile through the caller's proxy.
type TurnstileTask struct {
	WebsiteURL  string `json:"websiteURL"`
	WebsiteKey  string `json:"websiteKey"`
	Action      string `json:"action,omitempty"`
	CData       string `json:"cData,omitempty"`
	ChlPageData string `json:"chlPageData,omitempty"`
	Proxy
}

// AntiGateTask runs a scenario template in a worker's browser.
// Its proxy is optional and has no type field.
type AntiGateTask struct {
	WebsiteURL        string         `json:"websiteURL"`
	TemplateName      string         `json:"templateName"`
	Variables         map[string]any `json:"variables"`
	DomainsOfInterest []string       `json:"domainsOfInterest,omitempty"`
	ProxyAddress      string         `json:"proxyAddress,omitempty"`
	ProxyPort         int            `json:"proxyPort,omitempty"`
	ProxyLogin        string         `json:"proxyLogin,omitempty"`
	ProxyPassword     string         `json:"proxyPassword,omitempty"`
}

// ProsopoTaskProxyless solves Prosopo Procaptcha.
type ProsopoTaskProxyless struct {
	WebsiteURL string `json:"websiteURL"`
	WebsiteKey string `json:"websiteKey"`
}

// ProsopoTask solves Prosopo Procaptcha through the caller's proxy.
type ProsopoTask struct {
	WebsiteURL string `json:"websiteURL"`
	WebsiteKey string `json:"websiteKey"`
	Proxy
}

// FriendlyCaptchaTaskProxyless solves Friendly Captcha.
type FriendlyCaptchaTaskProxyless struct {
	WebsiteURL string `json:"websiteURL"`
	WebsiteKey string `json:"websiteKey"`
}

// FriendlyCaptchaTask solves Friendly Captcha through the caller's proxy.
type FriendlyCaptchaTask struct {
	WebsiteURL string `json:"websiteURL"`
	WebsiteKey string `json:"websiteKey"`
	Proxy
}

// AmazonTaskProxyless solves AWS WAF captcha, gokuProps or widget flavour.
type AmazonTaskProxyless struct {
	WebsiteURL string `json:"websiteURL"`
	// WebsiteKey is gokuProps.key or the renderCaptcha API key.
	WebsiteKey      string `json:"websiteKey"`
	IV              string `json:"iv,omitempty"`
	Context         string `json:"context,omitempty"`
	CaptchaScript   string `json:"captchaScript,omitempty"`
	ChallengeScript string `json:"challengeScript,omitempty"`
	// WafType is "widget" for the standalone widget.
	WafType     string `json:"wafType,omitempty"`
	JSAPIScript string `json:"jsapiScript,omitempty"`
}

// AmazonTask solves AWS WAF captcha through the caller's proxy.
type AmazonTask struct {
	WebsiteURL      string `json:"websiteURL"`
	WebsiteKey      string `json:"websiteKey"`
	IV              string `json:"iv,omitempty"`
	Context         string `json:"context,omitempty"`
	CaptchaScript   string `json:"captchaScript,omitempty"`
	ChallengeScript string `json:"challengeScript,omitempty"`
	WafType         string `json:"wafType,omitempty"`
	JSAPIScript     string `json:"jsapiScript,omitempty"`
	Proxy
}

// AltchaTaskProxyless solves Altcha.
type AltchaTaskProxyless struct {
	WebsiteURL    string `json:"websiteURL"`
	ChallengeURL  string `json:"challengeURL,omitempty"`
	ChallengeJSON string `json:"challengeJSON,omitempty"`
}

// AltchaTask solves Altcha through the caller's proxy.
type AltchaTask struct {
	WebsiteURL    string `json:"websiteURL"`
	ChallengeURL  string `json:"challengeURL,omitempty"`
	ChallengeJSON string `json:"challengeJSON,omitempty"`
	Proxy
}

func (t ImageToTextTask) TaskType() string { return "ImageToTextTask" }
func (ImageToTextTask) isTask() {}

func (t ImageToTextTask) MarshalJSON() ([]byte, error) {
	type alias ImageToTextTask
	return marshalWithType(t.TaskType(), alias(t))
}

func (t ImageToCoordinatesTask) TaskType() string { return "ImageToCoordinatesTask" }
func (ImageToCoordinatesTask) isTask() {}

func (t ImageToCoordinatesTask) MarshalJSON() ([]byte, error) {
	type alias ImageToCoordinatesTask
	return marshalWithType(t.TaskType(), alias(t))
}

func (t RecaptchaV2TaskProxyless) TaskType() string { return "RecaptchaV2TaskProxyless" }
func (RecaptchaV2TaskProxyless) isTask() {}

func (t RecaptchaV2TaskProxyless) MarshalJSON() ([]byte, error) {
	type alias RecaptchaV2TaskProxyless
	return marshalWithType(t.TaskType(), alias(t))
}

func (t RecaptchaV2Task) TaskType() string { return "RecaptchaV2Task" }
func (RecaptchaV2Task) isTask() {}

func (t RecaptchaV2Task) MarshalJSON() ([]byte, error) {
	type alias RecaptchaV2Task
	return marshalWithType(t.TaskType(), alias(t))
}

func (t RecaptchaV2EnterpriseTaskProxyless) TaskType() string { return "RecaptchaV2EnterpriseTaskProxyless" }
func (RecaptchaV2EnterpriseTaskProxyless) isTask() {}

func (t RecaptchaV2EnterpriseTaskProxyless) MarshalJSON() ([]byte, error) {
	type alias RecaptchaV2EnterpriseTaskProxyless
	return marshalWithType(t.TaskType(), alias(t))
}

func (t RecaptchaV2EnterpriseTask) TaskType() string { return "RecaptchaV2EnterpriseTask" }
func (RecaptchaV2EnterpriseTask) isTask() {}

func (t RecaptchaV2EnterpriseTask) MarshalJSON() ([]byte, error) {
	type alias RecaptchaV2EnterpriseTask
	return marshalWithType(t.TaskType(), alias(t))
}

func (t RecaptchaV3TaskProxyless) TaskType() string { return "RecaptchaV3TaskProxyless" }
func (RecaptchaV3TaskProxyless) isTask() {}

func (t RecaptchaV3TaskProxyless) MarshalJSON() ([]byte, error) {
	type alias RecaptchaV3TaskProxyless
	return marshalWithType(t.TaskType(), alias(t))
}

func (t FunCaptchaTaskProxyless) TaskType() string { return "FunCaptchaTaskProxyless" }
func (FunCaptchaTaskProxyless) isTask() {}

func (t FunCaptchaTaskProxyless) MarshalJSON() ([]byte, error) {
	type alias FunCaptchaTaskProxyless
	return marshalWithType(t.TaskType(), alias(t))
}

func (t FunCaptchaTask) TaskType() string { return "FunCaptchaTask" }
func (FunCaptchaTask) isTask() {}

func (t FunCaptchaTask) MarshalJSON() ([]byte, error) {
	type alias FunCaptchaTask
	return marshalWithType(t.TaskType(), alias(t))
}

func (t GeeTestTaskProxyless) TaskType() string { return "GeeTestTaskProxyless" }
func (GeeTestTaskProxyless) isTask() {}

func (t GeeTestTaskProxyless) MarshalJSON() ([]byte, error) {
	type alias GeeTestTaskProxyless
	return marshalWithType(t.TaskType(), alias(t))
}

func (t GeeTestTask) TaskType() string { return "GeeTestTask" }
func (GeeTestTask) isTask() {}

func (t GeeTestTask) MarshalJSON() ([]byte, error) {
	type alias GeeTestTask
	return marshalWithType(t.TaskType(), alias(t))
}

func (t TurnstileTaskProxyless) TaskType() string { return "TurnstileTaskProxyless" }
func (TurnstileTaskProxyless) isTask() {}

func (t TurnstileTaskProxyless) MarshalJSON() ([]byte, error) {
	type alias TurnstileTaskProxyless
	return marshalWithType(t.TaskType(), alias(t))
}

func (t TurnstileTask) TaskType() string { return "TurnstileTask" }
func (TurnstileTask) isTask() {}

func (t TurnstileTask) MarshalJSON() ([]byte, error) {
	type alias TurnstileTask
	return marshalWithType(t.TaskType(), alias(t))
}

func (t AntiGateTask) TaskType() string { return "AntiGateTask" }
func (AntiGateTask) isTask() {}

func (t AntiGateTask) MarshalJSON() ([]byte, error) {
	type alias AntiGateTask
	return marshalWithType(t.TaskType(), alias(t))
}

func (t ProsopoTaskProxyless) TaskType() string { return "ProsopoTaskProxyless" }
func (ProsopoTaskProxyless) isTask() {}

func (t ProsopoTaskProxyless) MarshalJSON() ([]byte, error) {
	type alias ProsopoTaskProxyless
	return marshalWithType(t.TaskType(), alias(t))
}

func (t ProsopoTask) TaskType() string { return "ProsopoTask" }
func (ProsopoTask) isTask() {}

func (t ProsopoTask) MarshalJSON() ([]byte, error) {
	type alias ProsopoTask
	return marshalWithType(t.TaskType(), alias(t))
}

func (t FriendlyCaptchaTaskProxyless) TaskType() string { return "FriendlyCaptchaTaskProxyless" }
func (FriendlyCaptchaTaskProxyless) isTask() {}

func (t FriendlyCaptchaTaskProxyless) MarshalJSON() ([]byte, error) {
	type alias FriendlyCaptchaTaskProxyless
	return marshalWithType(t.TaskType(), alias(t))
}

func (t FriendlyCaptchaTask) TaskType() string { return "FriendlyCaptchaTask" }
func (FriendlyCaptchaTask) isTask() {}

func (t FriendlyCaptchaTask) MarshalJSON() ([]byte, error) {
	type alias FriendlyCaptchaTask
	return marshalWithType(t.TaskType(), alias(t))
}

func (t AmazonTaskProxyless) TaskType() string { return "AmazonTaskProxyless" }
func (AmazonTaskProxyless) isTask() {}

func (t AmazonTaskProxyless) MarshalJSON() ([]byte, error) {
	type alias AmazonTaskProxyless
	return marshalWithType(t.TaskType(), alias(t))
}

func (t AmazonTask) TaskType() string { return "AmazonTask" }
func (AmazonTask) isTask() {}

func (t AmazonTask) MarshalJSON() ([]byte, error) {
	type alias AmazonTask
	return marshalWithType(t.TaskType(), alias(t))
}

func (t AltchaTaskProxyless) TaskType() string { return "AltchaTaskProxyless" }
func (AltchaTaskProxyless) isTask() {}

func (t AltchaTaskProxyless) MarshalJSON() ([]byte, error) {
	type alias AltchaTaskProxyless
	return marshalWithType(t.TaskType(), alias(t))
}

func (t AltchaTask) TaskType() string { return "AltchaTask" }
func (AltchaTask) isTask() {}

func (t AltchaTask) MarshalJSON() ([]byte, error) {
	type alias AltchaTask
	return marshalWithType(t.TaskType(), alias(t))
}
