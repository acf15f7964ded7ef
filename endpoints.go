package anticaptcha

// API method paths, relative to ClientConfig.APIURL.
const (
	pathGetBalance                  = "/getBalance"
	pathCreateTask                  = "/createTask"
	pathGetTaskResult               = "/getTaskResult"
	pathReportIncorrectImageCaptcha = "/reportIncorrectImageCaptcha"
	pathReportIncorrectRecaptcha    = "/reportIncorrectRecaptcha"
	pathReportCorrectRecaptcha      = "/reportCorrectRecaptcha"
	pathPushAntiGateVariable        = "/pushAntiGateVariable"
	pathGetQueueStats               = "/getQueueStats"
	pathGetSpendingStats            = "/getSpendingStats"
	pathGetAppStats                 = "/getAppStats"
	pathTest                        = "/test"
)

// Queue ids accepted by GetQueueStats.
const (
	QueueImageToTextEnglish       = 1
	QueueImageToTextRussian       = 2
	QueueRecaptchaV2WithProxy     = 5
	QueueRecaptchaV2Proxyless     = 6
	QueueFunCaptchaWithProxy      = 7
	QueueFunCaptchaProxyless      = 10
	QueueGeeTestProxyless         = 12
	QueueGeeTestWithProxy         = 13
	QueueRecaptchaV3Score03       = 18
	QueueRecaptchaV3Score07       = 19
	QueueRecaptchaV3Score09       = 20
	QueueHCaptchaProxyless        = 21
	QueueHCaptchaWithProxy        = 22
	QueueRecaptchaEnterpriseV2    = 23
	QueueRecaptchaEnterpriseProxy = 24
	QueueAntiGate                 = 25
	QueueTurnstileProxyless       = 26
	QueueTurnstileWithProxy       = 27
	QueueAmazonProxyless          = 28
	QueueAmazonWithProxy          = 29
)
