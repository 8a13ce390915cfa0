// Package i18n holds the landing page string catalogs and locale negotiation.
package i18n

import (
	"slices"
	"strings"
)

// Supported locale codes.
const (
	English = "en"
	Bengali = "bn"
	Hindi   = "hi"
)

// DefaultLocale is used when no preference or header match is available.
const DefaultLocale = English

var supportedLocales = []string{English, Bengali, Hindi}

// displayNames labels each locale in its own script for the language picker.
var displayNames = map[string]string{
	English: "English",
	Bengali: "বাংলা",
	Hindi:   "हिन्दी",
}

// Locales returns the supported locale codes in picker order.
func Locales() []string {
	return slices.Clone(supportedLocales)
}

// DisplayName returns the native label for a locale, or the code itself.
func DisplayName(locale string) string {
	if name, ok := displayNames[locale]; ok {
		return name
	}
	return locale
}

// Supported reports whether locale has a catalog.
func Supported(locale string) bool {
	_, ok := catalogs[locale]
	return ok
}

// Normalize lowercases and trims a locale code and strips any region subtag ("bn-BD" -> "bn").
// It returns "" when the base language is not supported.
func Normalize(locale string) string {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if i := strings.IndexAny(locale, "-_"); i >= 0 {
		locale = locale[:i]
	}
	if !Supported(locale) {
		return ""
	}
	return locale
}

// Catalog returns a copy of the messages for locale, or nil if unsupported.
func Catalog(locale string) map[string]string {
	msgs, ok := catalogs[locale]
	if !ok {
		return nil
	}
	out := make(map[string]string, len(msgs))
	for k, v := range msgs {
		out[k] = v
	}
	return out
}

var catalogs = map[string]map[string]string{
	English: {
		"hero.title":                        "Find Local Jobs and Services",
		"hero.description":                  "Connect with local opportunities and skilled professionals in your neighborhood",
		"hero.getStarted":                   "Get Started",
		"hero.browseJobs":                   "Browse Jobs",
		"howItWorks.title":                  "How It Works",
		"howItWorks.description":            "Our platform makes it easy to connect with local opportunities",
		"step1.title":                       "Create Your Profile",
		"step1.description":                 "Sign up and create your profile as a job seeker or service provider",
		"step2.title":                       "Find Opportunities",
		"step2.description":                 "Browse local jobs or post your services for others to discover",
		"step3.title":                       "Connect & Earn",
		"step3.description":                 "Message, collaborate, and build your local reputation",
		"categories.title":                  "Popular Categories",
		"categories.description":            "Explore jobs and services across various categories",
		"categories.viewAll":                "View All Categories",
		"category.homeServices":             "Home Services",
		"category.homeServices.description": "Cleaning, repairs, gardening, and other household services",
		"category.professional":             "Professional",
		"category.professional.description": "Accounting, legal, consulting, and business services",
		"category.creative":                 "Creative",
		"category.creative.description":     "Design, writing, photography, and artistic services",
		"category.education":                "Education",
		"category.education.description":    "Tutoring, coaching, training, and educational services",
		"cta.title":                         "Ready to Get Started?",
		"cta.description":                   "Join thousands of people finding local jobs and services in their community.",
		"cta.signUp":                        "Sign Up Now",
		"cta.learnMore":                     "Learn More",
		"explore":                           "Explore",
	},
	Bengali: {
		"hero.title":                        "স্থানীয় চাকরি এবং পরিষেবা খুঁজুন",
		"hero.description":                  "আপনার আশেপাশের সুযোগ এবং দক্ষ পেশাদারদের সাথে সংযোগ করুন",
		"hero.getStarted":                   "শুরু করুন",
		"hero.browseJobs":                   "চাকরি দেখুন",
		"howItWorks.title":                  "কিভাবে কাজ করে",
		"howItWorks.description":            "আমাদের প্ল্যাটফর্ম স্থানীয় সুযোগের সাথে সংযোগ করা সহজ করে",
		"step1.title":                       "আপনার প্রোফাইল তৈরি করুন",
		"step1.description":                 "চাকরি প্রার্থী বা সেবা প্রদানকারী হিসাবে সাইন আপ করুন এবং আপনার প্রোফাইল তৈরি করুন",
		"step2.title":                       "সুযোগ খুঁজুন",
		"step2.description":                 "স্থানীয় চাকরি ব্রাউজ করুন বা অন্যরা আবিষ্কার করার জন্য আপনার পরিষেবাগুলি পোস্ট করুন",
		"step3.title":                       "সংযোগ করুন এবং উপার্জন করুন",
		"step3.description":                 "বার্তা পাঠান, সহযোগিতা করুন এবং আপনার স্থানীয় খ্যাতি তৈরি করুন",
		"categories.title":                  "জনপ্রিয় বিভাগ",
		"categories.description":            "বিভিন্ন বিভাগে চাকরি এবং পরিষেবা অন্বেষণ করুন",
		"categories.viewAll":                "সমস্ত বিভাগ দেখুন",
		"category.homeServices":             "গৃহ পরিষেবা",
		"category.homeServices.description": "পরিষ্কার, মেরামত, বাগান, এবং অন্যান্য গৃহস্থালী পরিষেবা",
		"category.professional":             "পেশাদার",
		"category.professional.description": "অ্যাকাউন্টিং, আইনি, পরামর্শ, এবং ব্যবসায়িক পরিষেবা",
		"category.creative":                 "সৃজনশীল",
		"category.creative.description":     "ডিজাইন, লেখা, ফটোগ্রাফি, এবং শিল্প পরিষেবা",
		"category.education":                "শিক্ষা",
		"category.education.description":    "টিউটরিং, কোচিং, প্রশিক্ষণ, এবং শিক্ষামূলক পরিষেবা",
		"cta.title":                         "শুরু করতে প্রস্তুত?",
		"cta.description":                   "হাজার হাজার মানুষের সাথে যোগ দিন যারা তাদের সম্প্রদায়ে স্থানীয় চাকরি এবং পরিষেবা খুঁজে পাচ্ছে।",
		"cta.signUp":                        "এখনই সাইন আপ করুন",
		"cta.learnMore":                     "আরও জানুন",
		"explore":                           "অন্বেষণ করুন",
	},
	Hindi: {
		"hero.title":                        "स्थानीय नौकरियां और सेवाएं खोजें",
		"hero.description":                  "अपने आस-पास के अवसरों और कुशल पेशेवरों से जुड़ें",
		"hero.getStarted":                   "शुरू करें",
		"hero.browseJobs":                   "नौकरियां ब्राउज़ करें",
		"howItWorks.title":                  "यह कैसे काम करता है",
		"howItWorks.description":            "हमारा प्लेटफॉर्म स्थानीय अवसरों से जुड़ना आसान बनाता है",
		"step1.title":                       "अपना प्रोफ़ाइल बनाएं",
		"step1.description":                 "नौकरी खोजने वाले या सेवा प्रदाता के रूप में साइन अप करें और अपना प्रोफ़ाइल बनाएं",
		"step2.title":                       "अवसर खोजें",
		"step2.description":                 "स्थानीय नौकरियां ब्राउज़ करें या दूसरों के लिए अपनी सेवाएं पोस्ट करें",
		"step3.title":                       "जुड़ें और कमाएं",
		"step3.description":                 "संदेश भेजें, सहयोग करें, और अपनी स्थानीय प्रतिष्ठा बनाएं",
		"categories.title":                  "लोकप्रिय श्रेणियाँ",
		"categories.description":            "विभिन्न श्रेणियों में नौकरियां और सेवाएं खोजें",
		"categories.viewAll":                "सभी श्रेणियां देखें",
		"category.homeServices":             "घरेलू सेवाएं",
		"category.homeServices.description": "सफाई, मरम्मत, बागवानी, और अन्य घरेलू सेवाएं",
		"category.professional":             "पेशेवर",
		"category.professional.description": "लेखा, कानूनी, परामर्श, और व्यापारिक सेवाएं",
		"category.creative":                 "रचनात्मक",
		"category.creative.description":     "डिज़ाइन, लेखन, फोटोग्राफी, और कलात्मक सेवाएं",
		"category.education":                "शिक्षा",
		"category.education.description":    "ट्यूटरिंग, कोचिंग, प्रशिक्षण, और शैक्षिक सेवाएं",
		"cta.title":                         "शुरू करने के लिए तैयार हैं?",
		"cta.description":                   "हजारों लोगों के साथ जुड़ें जो अपने समुदाय में स्थानीय नौकरियां और सेवाएं खोज रहे हैं।",
		"cta.signUp":                        "अभी साइन अप करें",
		"cta.learnMore":                     "अधिक जानें",
		"explore":                           "खोजें",
	},
}
