package constants

const (
	WebBucketUrl   = "https://storage.cloud.google.com/eee-past-papers"
	WebShortLink   = "http://p.xav.ai"
	WebFaviconHref = "../xklogo/logo.png"
	WebFontHref    = "https://fonts.googleapis.com/css?family=Roboto"

	WebPageTitle       = "Imperial EEE Exam Papers | Xav Kearney"
	WebPageDescription = "Organised collection of the Imperial Electrical & Electronic Engineering (EEE) past examination papers, from 2000-today."
	WebPageAuthor      = "Xav Kearney"
	WebContactUser     = "hi"
	WebContactHost     = "xav.ai"
)
