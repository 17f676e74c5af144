package fixtures

import "github.com/blackmichael/explore-feed/internal/domain"

var posts = []domain.PostRecord{
	{ID: 1, UserName: "Allison Becker", UserLocation: "Sukabumi, Jawa Barat", Likes: 1201, Comments: 24, Bookmarks: 55},
	{ID: 2, UserName: "Sarah Johnson", UserLocation: "Los Angeles, California", Likes: 892, Comments: 18, Bookmarks: 42},
	{ID: 3, UserName: "Michael Chen", UserLocation: "Singapore", Likes: 2451, Comments: 67, Bookmarks: 128},
	{ID: 4, UserName: "Emma Wilson", UserLocation: "London, United Kingdom", Likes: 645, Comments: 31, Bookmarks: 38},
	{ID: 5, UserName: "David Martinez", UserLocation: "Barcelona, Spain", Likes: 1789, Comments: 45, Bookmarks: 91},
	{ID: 6, UserName: "Lisa Anderson", UserLocation: "New York, USA", Likes: 3210, Comments: 89, Bookmarks: 156},
	{ID: 7, UserName: "James Taylor", UserLocation: "Sydney, Australia", Likes: 567, Comments: 22, Bookmarks: 29},
	{ID: 8, UserName: "Sophia Rodriguez", UserLocation: "Mexico City, Mexico", Likes: 1432, Comments: 54, Bookmarks: 73},
	{ID: 9, UserName: "Ryan Brown", UserLocation: "Toronto, Canada", Likes: 921, Comments: 38, Bookmarks: 51},
	{ID: 10, UserName: "Isabella Garcia", UserLocation: "Miami, Florida", Likes: 2109, Comments: 76, Bookmarks: 112},
	{ID: 11, UserName: "Lucas Kim", UserLocation: "Seoul, South Korea", Likes: 1876, Comments: 61, Bookmarks: 94},
	{ID: 12, UserName: "Mia Thompson", UserLocation: "Paris, France", Likes: 734, Comments: 29, Bookmarks: 47},
	{ID: 13, UserName: "Noah Williams", UserLocation: "Berlin, Germany", Likes: 1543, Comments: 49, Bookmarks: 82},
	{ID: 14, UserName: "Ava Singh", UserLocation: "Mumbai, India", Likes: 2987, Comments: 92, Bookmarks: 167},
	{ID: 15, UserName: "Ethan Davis", UserLocation: "Chicago, Illinois", Likes: 812, Comments: 34, Bookmarks: 56},
	{ID: 16, UserName: "Charlotte Lee", UserLocation: "Hong Kong", Likes: 1654, Comments: 58, Bookmarks: 88},
	{ID: 17, UserName: "Mason Ahmed", UserLocation: "Dubai, UAE", Likes: 2234, Comments: 71, Bookmarks: 119},
	{ID: 18, UserName: "Amelia Nakamura", UserLocation: "Tokyo, Japan", Likes: 1398, Comments: 52, Bookmarks: 79},
	{ID: 19, UserName: "Oliver Santos", UserLocation: "Rio de Janeiro, Brazil", Likes: 976, Comments: 41, Bookmarks: 63},
	{ID: 20, UserName: "Harper Kowalski", UserLocation: "Warsaw, Poland", Likes: 1165, Comments: 44, Bookmarks: 71},
}

var stories = []domain.StoryRecord{
	{ID: 1, Name: "Joseph"},
	{ID: 2, Name: "Angel"},
	{ID: 3, Name: "White"},
	{ID: 4, Name: "Olivier"},
	{ID: 5, Name: "Sarah"},
	{ID: 6, Name: "Michael"},
	{ID: 7, Name: "Emma"},
	{ID: 8, Name: "David"},
	{ID: 9, Name: "Lisa"},
	{ID: 10, Name: "James"},
	{ID: 11, Name: "Sophia"},
	{ID: 12, Name: "Ryan"},
	{ID: 13, Name: "Isabella"},
	{ID: 14, Name: "Lucas"},
	{ID: 15, Name: "Mia"},
	{ID: 16, Name: "Noah"},
	{ID: 17, Name: "Ava"},
	{ID: 18, Name: "Ethan"},
	{ID: 19, Name: "Charlotte"},
	{ID: 20, Name: "Mason"},
}
