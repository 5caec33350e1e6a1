package models

// MeetingInfo describes the next community gathering and how to join it.
type MeetingInfo struct {
	Time         string `json:"time"`
	Topic        string `json:"topic"`
	WhatsappLink string `json:"whatsappLink"`
	DiscordLink  string `json:"discordLink"`
}

// DefaultMeetingInfo is what readers see before an admin has ever edited the
// meeting section, and again after a full data reset.
func DefaultMeetingInfo() MeetingInfo {
	return MeetingInfo{
		Time:         "7:00 PM",
		Topic:        "Book of James, Chapter 1",
		WhatsappLink: "https://chat.whatsapp.com/CedwGPg5qByF4Bg55nirSX",
		DiscordLink:  "https://discord.gg/aQVB4uUF",
	}
}
