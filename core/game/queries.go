package game

// GameBySlugQuery fetches one game by its slug
const GameBySlugQuery = `
  query GetGamePostBySlug($slug: ID!) {
    game(id: $slug, idType: SLUG) {
      seo {
        title
        metaDesc
      }
      gameContent {
        title
        slug
        genre
        publishedAt
        longDescription
      }
      gameFields {
        iframeUrl
        developer
        shortDescription
        socialDescription
        faqjsonld
        rating
        ratingCount
      }
    }
  }
`

// GamesBySlugsQuery fetches every game whose slug is in $slugs
const GamesBySlugsQuery = `
  query GetGamesBySlugs($slugs: [String!]!) {
    games(where: { nameIn: $slugs }) {
      nodes {
        seo {
          title
          metaDesc
        }
        gameContent {
          title
          slug
          genre
          publishedAt
          longDescription
        }
        gameFields {
          iframeUrl
          developer
          shortDescription
          socialDescription
          faqjsonld
          rating
          ratingCount
        }
      }
    }
  }
`
