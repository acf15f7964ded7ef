package anticaptcha

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"slices"
	"strconv"
)

// Task is one captcha instance to solve. The set of implementations is closed:
// only the task types declared in this package satisfy it, and each one
// serializes with its own "type" discriminant.
type Task interface {
	// TaskType returns the API discriminant, e.g. "RecaptchaV2TaskProxyless".
	TaskType() string
	isTask()
}

// ProxyType is the protocol of a caller-supplied proxy.
type ProxyType string

const (
	ProxyHTTP   ProxyType = "http"
	ProxyHTTPS  ProxyType = "https"
	ProxySOCKS4 ProxyType = "socks4"
	ProxySOCKS5 ProxyType = "socks5"
)

// Proxy is the proxy block shared by every non-proxyless task.
// Address must be a public IPv4/IPv6 address, not a host name.
type Proxy struct {
	Type     ProxyType `json:"proxyType"`
	Address  string    `json:"proxyAddress"`
	Port     int       `json:"proxyPort"`
	Login    string    `json:"proxyLogin,omitempty"`
	Password string    `json:"proxyPassword,omitempty"`
}

// ProxyFromURL parses "scheme://[user:pass@]host:port" into a Proxy.
func ProxyFromURL(raw string) (Proxy, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Proxy{}, fmt.Errorf("proxy url: %w", err)
	}
	pt := ProxyType(u.Scheme)
	switch pt {
	case ProxyHTTP, ProxyHTTPS, ProxySOCKS4, ProxySOCKS5:
	default:
		return Proxy{}, fmt.Errorf("proxy url: unsupported scheme %q", u.Scheme)
	}
	port, err := strconv.Atoi(u.Port())
	if err != nil || port <= 0 || port > 65535 {
		return Proxy{}, fmt.Errorf("proxy url: invalid port %q", u.Port())
	}
	if u.Hostname() == "" {
		return Proxy{}, fmt.Errorf("proxy url: missing host")
	}
	p := Proxy{Type: pt, Address: u.Hostname(), Port: port}
	if u.User != nil {
		p.Login = u.User.Username()
		p.Password, _ = u.User.Password()
	}
	return p, nil
}

// marshalWithType encodes v (an alias of a task struct, so its own
// MarshalJSON is not re-entered) and prepends the "type" discriminant.
func marshalWithType(taskType string, v any) ([]byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	typ, _ := json.Marshal(taskType)

	var buf bytes.Buffer
	buf.WriteString(`{"type":`)
	buf.Write(typ)
	if inner := bytes.TrimSpace(body[1 : len(body)-1]); len(inner) > 0 {
		buf.WriteByte(',')
		buf.Write(inner)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

var taskFactories = map[string]func() Task{
	"ImageToTextTask":                    func() Task { return &ImageToTextTask{} },
	"ImageToCoordinatesTask":             func() Task { return &ImageToCoordinatesTask{} },
	"RecaptchaV2TaskProxyless":           func() Task { return &RecaptchaV2TaskProxyless{} },
	"RecaptchaV2Task":                    func() Task { return &RecaptchaV2Task{} },
	"RecaptchaV2EnterpriseTaskProxyless": func() Task { return &RecaptchaV2EnterpriseTaskProxyless{} },
	"RecaptchaV2EnterpriseTask":          func() Task { return &RecaptchaV2EnterpriseTask{} },
	"RecaptchaV3TaskProxyless":           func() Task { return &RecaptchaV3TaskProxyless{} },
	"FunCaptchaTaskProxyless":            func() Task { return &FunCaptchaTaskProxyless{} },
	"FunCaptchaTask":                     func() Task { return &FunCaptchaTask{} },
	"GeeTestTaskProxyless":               func() Task { return &GeeTestTaskProxyless{} },
	"GeeTestTask":                        func() Task { return &GeeTestTask{} },
	"TurnstileTaskProxyless":             func() Task { return &TurnstileTaskProxyless{} },
	"TurnstileTask":                      func() Task { return &TurnstileTask{} },
	"AntiGateTask":                       func() Task { return &AntiGateTask{} },
	"ProsopoTaskProxyless":               func() Task { return &ProsopoTaskProxyless{} },
	"ProsopoTask":                        func() Task { return &ProsopoTask{} },
	"FriendlyCaptchaTaskProxyless":       func() Task { return &FriendlyCaptchaTaskProxyless{} },
	"FriendlyCaptchaTask":                func() Task { return &FriendlyCaptchaTask{} },
	"AmazonTaskProxyless":                func() Task { return &AmazonTaskProxyless{} },
	"AmazonTask":                         func() Task { return &AmazonTask{} },
	"AltchaTaskProxyless":                func() Task { return &AltchaTaskProxyless{} },
	"AltchaTask":                         func() Task { return &AltchaTask{} },
}

// DecodeTask builds the task variant named by the "type" field of data.
// The returned Task is a pointer to the variant struct.
func DecodeTask(data []byte) (Task, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("decode task: %w", err)
	}
	newTask, ok := taskFactories[head.Type]
	if !ok {
		return nil, fmt.Errorf("decode task: unknown type %q", head.Type)
	}
	t := newTask()
	if err := json.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("decode %s: %w", head.Type, err)
	}
	return t, nil
}

// TaskTypes returns every supported discriminant in sorted order.
func TaskTypes() []string {
	types := make([]string, 0, len(taskFactories))
	for k := range taskFactories {
		types = append(types, k)
	}
	slices.Sort(types)
	return types
}
