// Package fixtures holds the bilingual sample content used by the seed
// command and by integration tests. The records mirror what the site
// actually publishes, so seeded environments look like production.
package fixtures

import (
	"time"

	"github.com/google/uuid"

	"github.com/siawash1991/my-website/internal/domain/entity"
)

func ptr(s string) *string { return &s }

// Posts returns the sample blog posts, ordered by publication date.
func Posts() []*entity.Post {
	now := time.Now().UTC()
	return []*entity.Post{
		{
			ID:         uuid.NewString(),
			TitleEn:    "The Future of AI-Powered Content Creation",
			TitleFa:    "آینده تولید محتوای مبتنی بر هوش مصنوعی",
			ExcerptEn:  "How large language models are reshaping the way we write, edit and publish.",
			ExcerptFa:  "مدل‌های زبانی بزرگ چگونه شیوه نوشتن، ویرایش و انتشار ما را دگرگون می‌کنند.",
			ContentEn:  "Large language models have moved from research labs into everyday editorial workflows...",
			ContentFa:  "مدل‌های زبانی بزرگ از آزمایشگاه‌های پژوهشی به جریان کاری روزمره تحریریه‌ها راه یافته‌اند...",
			CategoryEn: "Content AI",
			CategoryFa: "هوش مصنوعی محتوا",
			ReadTime:   8,
			Date:       "2024-10-15",
			Thumbnail:  "ai-content",
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		{
			ID:         uuid.NewString(),
			TitleEn:    "Prompt Engineering in Practice",
			TitleFa:    "مهندسی پرامپت در عمل",
			ExcerptEn:  "Patterns that consistently get better answers out of language models.",
			ExcerptFa:  "الگوهایی که همیشه پاسخ‌های بهتری از مدل‌های زبانی می‌گیرند.",
			ContentEn:  "Good prompts are less about magic words and more about clear constraints...",
			ContentFa:  "پرامپت خوب بیش از آنکه به واژه‌های جادویی وابسته باشد به قیدهای روشن وابسته است...",
			CategoryEn: "AI",
			CategoryFa: "هوش مصنوعی",
			ReadTime:   6,
			Date:       "2024-11-01",
			Thumbnail:  "prompts",
			ArticleURL: ptr("https://example.com/articles/prompt-engineering"),
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		{
			ID:         uuid.NewString(),
			TitleEn:    "Building a Bilingual Portfolio Site",
			TitleFa:    "ساخت وب‌سایت نمونه‌کار دوزبانه",
			ExcerptEn:  "Lessons from serving the same content in English and Farsi.",
			ExcerptFa:  "درس‌هایی از ارائه محتوای یکسان به انگلیسی و فارسی.",
			ContentEn:  "Serving right-to-left and left-to-right text from one API sounds trivial until...",
			ContentFa:  "ارائه متن راست‌به‌چپ و چپ‌به‌راست از یک API ساده به نظر می‌رسد تا اینکه...",
			CategoryEn: "Web Development",
			CategoryFa: "توسعه وب",
			ReadTime:   5,
			Date:       "2024-12-10",
			Thumbnail:  "bilingual",
			CreatedAt:  now,
			UpdatedAt:  now,
		},
	}
}

// Podcasts returns the sample podcast episodes.
func Podcasts() []*entity.Podcast {
	now := time.Now().UTC()
	return []*entity.Podcast{
		{
			ID:            uuid.NewString(),
			TitleEn:       "ChatGPT and the Future of Work",
			TitleFa:       "چت‌جی‌پی‌تی و آینده کار",
			DescriptionEn: "A conversation about automation, augmentation and what stays human.",
			DescriptionFa: "گفتگویی درباره اتوماسیون، توانمندسازی و آنچه انسانی می‌ماند.",
			Duration:      "45:30",
			Date:          "2024-09-20",
			AudioURL:      ptr("https://cdn.example.com/podcasts/chatgpt-future-of-work.mp3"),
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:            uuid.NewString(),
			TitleEn:       "Building Products with LLMs",
			TitleFa:       "ساخت محصول با مدل‌های زبانی",
			DescriptionEn: "From prototype to production with language model APIs.",
			DescriptionFa: "از نمونه اولیه تا محصول نهایی با APIهای مدل زبانی.",
			Duration:      "38:12",
			Date:          "2024-12-01",
			YoutubeURL:    ptr("https://youtube.com/watch?v=llm-products"),
			CreatedAt:     now,
			UpdatedAt:     now,
		},
	}
}

// Startups returns the sample startup profiles.
func Startups() []*entity.Startup {
	now := time.Now().UTC()
	return []*entity.Startup{
		{
			ID:            uuid.NewString(),
			NameEn:        "Personalized Children's Story Creator",
			NameFa:        "سازنده داستان کودک شخصی‌سازی‌شده",
			DescriptionEn: "Generates illustrated bedtime stories tailored to each child.",
			DescriptionFa: "داستان‌های مصور شب را متناسب با هر کودک می‌سازد.",
			StatusEn:      "In Development",
			StatusFa:      "در حال توسعه",
			CategoryEn:    "EdTech",
			CategoryFa:    "فناوری آموزشی",
			Thumbnail:     "sparkles",
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:            uuid.NewString(),
			NameEn:        "AI Resume Reviewer",
			NameFa:        "بازبین رزومه هوشمند",
			DescriptionEn: "Reviews resumes against job descriptions and suggests edits.",
			DescriptionFa: "رزومه‌ها را با شرح شغل مقایسه کرده و ویرایش پیشنهاد می‌دهد.",
			StatusEn:      "Idea",
			StatusFa:      "مرحله ایده",
			CategoryEn:    "Career",
			CategoryFa:    "شغلی",
			Thumbnail:     "briefcase",
			WebsiteURL:    ptr("https://resume.example.com"),
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:            uuid.NewString(),
			NameEn:        "Farsi Voice Notes Transcriber",
			NameFa:        "رونویس یادداشت‌های صوتی فارسی",
			DescriptionEn: "Turns Farsi voice memos into searchable, editable text.",
			DescriptionFa: "یادداشت‌های صوتی فارسی را به متن قابل جستجو و ویرایش تبدیل می‌کند.",
			StatusEn:      "Launched",
			StatusFa:      "راه‌اندازی شده",
			CategoryEn:    "Productivity",
			CategoryFa:    "بهره‌وری",
			Thumbnail:     "microphone",
			ArticleURL:    ptr("https://example.com/articles/voice-transcriber"),
			CreatedAt:     now,
			UpdatedAt:     now,
		},
	}
}
