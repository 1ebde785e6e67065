package storage

import "testing"

func TestPublicID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "image url",
			url:  "https://res.cloudinary.com/demo/image/upload/v1700000000/abc123.jpg",
			want: "abc123",
		},
		{
			name: "video url",
			url:  "https://res.cloudinary.com/demo/video/upload/v1700000000/clip42.mp4",
			want: "clip42",
		},
		{
			name: "multiple dots cut at first",
			url:  "https://res.cloudinary.com/demo/image/upload/photo.final.png",
			want: "photo",
		},
		{
			name: "no extension",
			url:  "https://res.cloudinary.com/demo/image/upload/rawid",
			want: "rawid",
		},
		{
			name: "trailing slash",
			url:  "https://res.cloudinary.com/demo/image/upload/",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PublicID(tt.url); got != tt.want {
				t.Errorf("PublicID(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestResourceType(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "mp4 is video", url: "https://cdn.example.com/a/clip.mp4", want: "video"},
		{name: "mov is video", url: "https://cdn.example.com/a/clip.MOV", want: "video"},
		{name: "avi is video", url: "https://cdn.example.com/a/clip.avi", want: "video"},
		{name: "jpg is image", url: "https://cdn.example.com/a/pic.jpg", want: "image"},
		{name: "png is image", url: "https://cdn.example.com/a/pic.png", want: "image"},
		{name: "no extension is image", url: "https://cdn.example.com/a/pic", want: "image"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResourceType(tt.url); got != tt.want {
				t.Errorf("ResourceType(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}
