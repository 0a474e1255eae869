package graphql

// Schema is the gateway's GraphQL contract. Field and argument names
// mirror the wire contract of the backend services so that a GraphQL
// selection maps one-to-one onto RPC messages.
const Schema = `
schema {
	query: Query
	mutation: Mutation
}

type Query {
	orders: [Order!]!
	order(id: String!): Order
	restaurants: [Restaurant!]!
	restaurant(id: String!): Restaurant
}

type Mutation {
	createOrder(input: OrderInput!): Order
	updateOrderStatus(id: String!, status: String!): Order
	createRestaurant(input: RestaurantInput!): Restaurant
}

type Order {
	id: String!
	restaurantId: String!
	status: String!
	items: [OrderItem!]!
}

type OrderItem {
	name: String!
	quantity: Int!
	price: Float!
}

type Restaurant {
	id: String!
	name: String!
	menu: [MenuItem!]!
}

type MenuItem {
	name: String!
	price: Float!
}

input OrderInput {
	restaurantId: String!
	items: [OrderItemInput!]!
}

input OrderItemInput {
	name: String!
	quantity: Int!
	price: Float!
}

input RestaurantInput {
	name: String!
	menu: [MenuItemInput!]!
}

input MenuItemInput {
	name: String!
	price: Float!
}
`
